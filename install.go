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

import (
	"dirpx.dev/errcode/attr"
	"dirpx.dev/errcode/bag"
)

// Reserved attribute names used by the constructors.
const (
	// AttrCode is the name under which the code installer defines the
	// optional machine-facing code value.
	AttrCode = "code"

	// AttrCause is the name under which the cause installer defines the
	// optional underlying-cause value.
	AttrCause = "cause"

	// AttrErrors holds the member errors of the aggregate variant.
	AttrErrors = "errors"

	// AttrError holds the winning error of the suppressed variant.
	AttrError = "error"

	// AttrSuppressed holds the hidden error of the suppressed variant.
	AttrSuppressed = "suppressed"
)

// InstallCode conditionally copies the "code" member of opts onto target.
//
// Behavior, in order:
//
//  1. when opts is nil (no options were supplied), do nothing;
//  2. when opts does not carry a "code" member, do nothing;
//  3. read the member; a failing read (a computed member that errors)
//     aborts the install and is returned to the caller unchanged;
//  4. define the "code" attribute on target with the read value and the
//     installed-metadata flags: enumerable=false, writable=true,
//     configurable=true. Defining fails only when target already carries a
//     non-configurable "code" (attr.ErrNotConfigurable) or is not
//     extensible; an existing configurable "code" is overwritten.
//
// At most one attribute is added per call. The value is installed exactly
// as read — any type, including nil, with no validation. See the codestr
// package for the optional string convention; it is deliberately not
// enforced here.
func InstallCode(target *attr.Set, opts bag.Bag) error {
	return installMember(target, opts, AttrCode)
}

// InstallCause conditionally copies the "cause" member of opts onto target,
// with semantics identical to InstallCode. Constructors run it before the
// code installer, so both attributes are independent: either, both, or
// neither may end up present.
func InstallCause(target *attr.Set, opts bag.Bag) error {
	return installMember(target, opts, AttrCause)
}

func installMember(target *attr.Set, opts bag.Bag, name string) error {
	v, ok, err := bag.Lookup(opts, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return target.Define(name, v, attr.Hidden())
}
