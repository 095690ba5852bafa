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

// Package codestr defines the conventional string form of a code value.
//
// The "code" attribute carries any value whatsoever — that is a deliberate
// property of the core model, and nothing in errcode enforces otherwise.
// In practice, though, codes are overwhelmingly short machine-readable
// strings, often namespaced:
//
//   - "err_invalid_arg"
//   - "storage.pg.connect_timeout"
//   - "auth.token.expired"
//
// This package is for teams that opt into that convention: it provides
// parsing, normalization and validation for such strings, and the codemap
// package uses it to validate prefix rules and normalize lookups.
//
// Str is intentionally optional: the zero value ("") is allowed and means
// "no conventional form". The core construction path never imports this
// package; a non-conforming code value is not an error anywhere.
package codestr
