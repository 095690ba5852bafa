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

package bag

// Bag is the minimal read surface of a construction-time options value.
//
// Implementations must keep Has and Get consistent: Get is only called for
// keys that Has reported present. Get may still fail for such keys when the
// member is computed — that failure is the caller's to handle.
type Bag interface {
	// Has reports whether the named member is present in the bag.
	Has(key string) bool

	// Get reads the named member. It is only meaningful for keys that Has
	// reported present; for computed members the read itself may fail.
	Get(key string) (any, error)
}

// Map is the plain, literal-friendly Bag. Reads never fail.
//
// A nil Map is a valid Bag with no members, but note that passing a nil
// *interface* (no bag at all) is the usual way to express "no options".
type Map map[string]any

// Has implements Bag.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Get implements Bag. The error is always nil.
func (m Map) Get(key string) (any, error) {
	return m[key], nil
}

// Accessors is a Bag whose members are computed on every read.
//
// It exists for callers that derive option values lazily, and for tests
// that need a member whose read fails. A nil function behaves like a member
// holding nil.
type Accessors map[string]func() (any, error)

// Has implements Bag.
func (a Accessors) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Get implements Bag by invoking the member's accessor. Any accessor
// failure is returned unchanged.
func (a Accessors) Get(key string) (any, error) {
	fn, ok := a[key]
	if !ok || fn == nil {
		return nil, nil
	}
	return fn()
}

// Lookup performs the guarded member read used by installers.
//
// It returns, in order of the checks performed:
//
//   - (nil, false, nil) when b is nil — no options were supplied at all;
//   - (nil, false, nil) when b does not carry key;
//   - (nil, false, err) when the member is present but reading it failed;
//     the error is propagated verbatim, never wrapped;
//   - (v, true, nil) otherwise, where v is exactly the member's value
//     (which may itself be nil).
func Lookup(b Bag, key string) (any, bool, error) {
	if b == nil {
		return nil, false, nil
	}
	if !b.Has(key) {
		return nil, false, nil
	}
	v, err := b.Get(key)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
