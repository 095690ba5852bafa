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

package errcode

import "dirpx.dev/errcode/bag"

// Option populates the options bag assembled by Opts. It exists for
// callers that build errors programmatically and prefer functional options
// over map literals:
//
//	e, err := errcode.New("storage is down",
//	    errcode.Opts(
//	        errcode.WithCode("storage.pg.connect_timeout"),
//	        errcode.WithCause(pgErr),
//	    ))
type Option func(bag.Map)

// Opts assembles a bag.Map from the provided options. With no options it
// returns an empty (but present) bag — construction with it installs
// nothing, exactly as with a literal empty map.
func Opts(opts ...Option) bag.Map {
	m := make(bag.Map, len(opts))
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithCode sets the "code" member of the bag. The value is unconstrained:
// strings are the ecosystem convention, but numbers, structs, or nil are
// equally acceptable and installed as-is.
func WithCode(v any) Option {
	return func(m bag.Map) { m[AttrCode] = v }
}

// WithCause sets the "cause" member of the bag.
func WithCause(v any) Option {
	return func(m bag.Map) { m[AttrCause] = v }
}
