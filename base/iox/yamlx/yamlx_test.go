// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string    `yaml:"name"`
	Times []float64 `yaml:"times,flow"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	in := testStruct{Name: "hips", Times: []float64{0, 0.5, 1}}
	require.NoError(t, Save(&in, fn))

	out := testStruct{}
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytes(t *testing.T) {
	b, err := WriteBytes(&testStruct{Name: "spine", Times: []float64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "name: spine\ntimes: [1, 2]\n", string(b))

	out := testStruct{}
	require.NoError(t, ReadBytes(&out, nil))
	assert.Equal(t, testStruct{}, out)

	assert.Error(t, ReadBytes(&out, []byte("height: 3\n")))
}

func TestSaveError(t *testing.T) {
	assert.Error(t, Save(&testStruct{}, filepath.Join(t.TempDir(), "missing", "test.yaml")))
}
