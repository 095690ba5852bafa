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

// Package attr implements the named-attribute model backing errcode error
// objects.
//
// Fixed Go struct fields cannot express an attribute that is optional,
// deletable, and whose visibility in iteration is independent from its
// mutability. A Set models exactly that: each attribute carries its value
// plus three independent flags:
//
//   - Enumerable: included in Names() (default iteration);
//   - Writable: Assign may replace the value;
//   - Configurable: Define may redefine it, Delete may remove it.
//
// An attribute is either entirely absent from the set or present with
// exactly the value it was defined with — the Set never synthesizes,
// defaults, or coerces values. Values are untyped (any) on purpose; see the
// codestr package for the optional string convention.
//
// A Set is owned by a single constructor while the enclosing object is being
// built and is not synchronized. Do not share one Set across concurrent
// mutators.
package attr
