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

package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoad(t *testing.T) {
	cat, err := Load(zaptest.NewLogger(t))
	require.NoError(t, err)

	require.True(t, cat.Qualities.ReadOnly())
	require.True(t, cat.Scales.ReadOnly())
	require.True(t, cat.Instruments.ReadOnly())
	require.Equal(t, Level, cat.Qualities.Level())

	require.Equal(t, 24, cat.Qualities.Len())
	require.Equal(t, 14, cat.Scales.Len())
	require.Equal(t, 5, cat.Instruments.Len())

	guitar, err := cat.Instruments.Get("Guitar")
	require.NoError(t, err)
	require.Equal(t, 7, guitar.Tunings().Len())
	std, ok := guitar.Tunings().Find("Standard")
	require.True(t, ok)
	require.True(t, std.ReadOnly())

	minor := cat.Qualities.Find("m")
	require.Len(t, minor, 1)
	require.Equal(t, "Minor", minor[0].Name())
}

func TestLoad_FreshCopies(t *testing.T) {
	a, err := Load(nil)
	require.NoError(t, err)
	b, err := Load(nil)
	require.NoError(t, err)
	require.NotSame(t, a.Qualities, b.Qualities)
	require.NotEmpty(t, XML())
}
