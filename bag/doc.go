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

// Package bag models the optional, loosely-typed options value accepted by
// errcode constructors.
//
// A Bag may be absent (a nil interface), present but missing a given
// member, or present with the member set to any value whatsoever —
// including nil. Lookup keeps those three cases distinct, which is what
// lets an installer distinguish "no code supplied" from "code supplied as
// nil".
//
// Two implementations are provided: Map for plain literals, and Accessors
// for members that are computed on read and may fail. A failing read is
// reported verbatim to the caller; nothing in this package recovers,
// retries, or substitutes defaults.
package bag
