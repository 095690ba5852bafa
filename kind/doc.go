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

// Package kind names the members of the errcode error-object family.
//
// A "kind" identifies which constructor built an error object: the base
// constructor, one of the typed variants, the aggregate constructor, or the
// suppressed constructor. Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and log fields.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every error object MUST
// carry a non-empty kind; constructors default to Base.
//
// This package defines the canonical representation, the family constants,
// and validation for embedder-declared variants. It says nothing about the
// "code" attribute — kinds classify the object, codes classify the failure.
package kind
