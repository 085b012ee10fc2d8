/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinitions(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, def := range map[string]string{
		"bars.yaml": "id: bars\ndata: [[1, 2]]\noptions: {seriesDefaults: {renderer: {type: bar}}}\n",
		"zoom.yaml": "id: zoom\ndata: [[3]]\noptions: {cursor: {zoom: true}}\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(def), 0o600))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := writeDefinitions(t)
	bars, zoom := filepath.Join(dir, "bars.yaml"), filepath.Join(dir, "zoom.yaml")

	got, err := run(t, "render", bars, zoom)
	require.NoError(t, err)
	assert.Equal(t,
		`$.jqplot("bars", [[1,2]], {seriesDefaults:{renderer:$.jqplot.BarRenderer}});`+"\n"+
			`$.jqplot("zoom", [[3]], {cursor:{zoom:true}});`+"\n"+
			"jqplot.barRenderer.min.js\n"+
			"jqplot.cursor.min.js\n",
		got)

	got, err = run(t, "render", "--html", "--plugin-base", "/js", zoom)
	require.NoError(t, err)
	assert.Contains(t, got, `<script src="/js/jqplot.cursor.min.js"></script>`)
	assert.Contains(t, got, `<script>$.jqplot("zoom", [[3]], {cursor:{zoom:true}});</script>`)
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "render")
	assert.Error(t, err)

	_, err = run(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
