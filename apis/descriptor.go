/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Descriptor is a flat, transport-friendly description of a single error
// object, intended for structured logging, tracing, or message-bus
// propagation.
//
// This type intentionally uses plain strings and a separate presence bit
// (not the attr/bag machinery) so that it can live in the public "apis"
// layer and survive JSON round-trips unchanged.
type Descriptor struct {
	// Kind is the canonical family kind.
	Kind string `json:"kind"`

	// Code is the string rendering of the installed code value (fmt %v).
	// Only meaningful when HasCode is true.
	Code string `json:"code,omitempty"`

	// HasCode records whether the code attribute was present at all.
	// This keeps "installed as nil/empty" distinct from "never installed".
	HasCode bool `json:"has_code"`

	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the resolved HTTP status, when a mapper was consulted.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer), when a mapper
	// was consulted. A value of 0 means "not resolved" (0 is also codes.OK,
	// which never describes an error here).
	GRPCCode int `json:"grpc_code,omitempty"`
}
