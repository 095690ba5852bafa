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

package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefine_AndValue(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Hidden()))

	v, ok := s.Value("code")
	require.True(t, ok)
	assert.Equal(t, "ERR_X", v)
	assert.True(t, s.Has("code"))
}

func TestDefine_IdentityPreserving(t *testing.T) {
	var s Set

	nested := map[string]any{"a": []int{1, 2, 3}}
	require.NoError(t, s.Define("code", nested, Hidden()))

	v, ok := s.Value("code")
	require.True(t, ok)
	// Same reference, not a copy.
	m, ok := v.(map[string]any)
	require.True(t, ok)
	m["b"] = true
	assert.Contains(t, nested, "b")
}

func TestDefine_NilValueIsPresent(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", nil, Hidden()))

	v, ok := s.Value("code")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.True(t, s.Has("code"))
}

func TestDefine_OverwriteConfigurable(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Hidden()))
	require.NoError(t, s.Define("code", "ERR_Y", Hidden()))

	v, _ := s.Value("code")
	assert.Equal(t, "ERR_Y", v)
	assert.Equal(t, 1, s.Len())
}

func TestDefine_NonConfigurableFails(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Flags{Writable: true}))

	err := s.Define("code", "ERR_Y", Hidden())
	require.ErrorIs(t, err, ErrNotConfigurable)

	// The locked-down value must survive.
	v, _ := s.Value("code")
	assert.Equal(t, "ERR_X", v)
}

func TestDefine_NotExtensible(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", 1, Hidden()))
	s.PreventExtensions()

	assert.False(t, s.Extensible())
	require.ErrorIs(t, s.Define("cause", 2, Hidden()), ErrNotExtensible)

	// Redefining an existing configurable attribute is still allowed.
	require.NoError(t, s.Define("code", 3, Hidden()))
}

func TestAssign(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Hidden()))
	require.NoError(t, s.Assign("code", 42))

	v, _ := s.Value("code")
	assert.Equal(t, 42, v)

	// Assign must not touch the flags.
	f, ok := s.Lookup("code")
	require.True(t, ok)
	assert.Equal(t, Hidden(), f)
}

func TestAssign_NotWritable(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Flags{Configurable: true}))
	require.ErrorIs(t, s.Assign("code", "ERR_Y"), ErrNotWritable)
}

func TestAssign_CreatesDataAttribute(t *testing.T) {
	var s Set

	require.NoError(t, s.Assign("extra", "v"))

	f, ok := s.Lookup("extra")
	require.True(t, ok)
	assert.Equal(t, Data(), f)
}

func TestDelete(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Hidden()))
	require.NoError(t, s.Delete("code"))
	assert.False(t, s.Has("code"))

	// Absent delete is a no-op.
	require.NoError(t, s.Delete("code"))
}

func TestDelete_NonConfigurable(t *testing.T) {
	var s Set

	require.NoError(t, s.Define("code", "ERR_X", Flags{Writable: true}))
	require.ErrorIs(t, s.Delete("code"), ErrNotConfigurable)
	assert.True(t, s.Has("code"))
}

func TestNames_FiltersEnumerability(t *testing.T) {
	var s Set

	require.NoError(t, s.Assign("message", "boom"))
	require.NoError(t, s.Define("code", "ERR_X", Hidden()))
	require.NoError(t, s.Assign("detail", "d"))

	assert.Equal(t, []string{"message", "detail"}, s.Names())
	assert.Equal(t, []string{"message", "code", "detail"}, s.OwnNames())
}

func TestNames_OrderSurvivesDelete(t *testing.T) {
	var s Set

	require.NoError(t, s.Assign("a", 1))
	require.NoError(t, s.Assign("b", 2))
	require.NoError(t, s.Assign("c", 3))
	require.NoError(t, s.Delete("b"))

	assert.Equal(t, []string{"a", "c"}, s.OwnNames())
}

func TestZeroValueAndNilReads(t *testing.T) {
	var s Set

	assert.False(t, s.Has("code"))
	assert.Nil(t, s.Names())
	assert.Nil(t, s.OwnNames())
	assert.Equal(t, 0, s.Len())

	var nilSet *Set
	assert.False(t, nilSet.Has("code"))
	_, ok := nilSet.Value("code")
	assert.False(t, ok)
}
