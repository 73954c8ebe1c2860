package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greenside/links"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), "stderr: %s", errOut.String())
	return out.String()
}

func TestGenerateWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hole.json")
	execute(t, generateCmd(), "--par", "3", "--seed", "5", "--dogleg", "-o", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap links.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Equal(t, 150, snap.Length)
	require.Equal(t, 3, snap.Par)
	require.Equal(t, int64(5), snap.Seed)
	require.Len(t, snap.Heightmap[0], 150)
	require.GreaterOrEqual(t, len(snap.Features), 4)
	require.Equal(t, "fairway", snap.Features[0].Kind)
}

func TestQuerySnapshotMatchesGenerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hole.json")
	execute(t, generateCmd(), "--seed", "11", "-o", path)

	generated := execute(t, queryCmd(), "--seed", "11", "--distance", "0", "--lateral", "75")
	restored := execute(t, queryCmd(), "--snapshot", path, "-x", "0", "-z", "75")
	require.Equal(t, generated, restored)

	// the centerline starts at the baseline, so the tee is on the band
	require.Contains(t, restored, "band:    true")
	require.True(t, strings.HasPrefix(restored, "height:  "))

	off := execute(t, queryCmd(), "--snapshot", path, "--distance=-10", "--lateral", "75")
	require.Contains(t, off, "height:  0.000000")
	require.Contains(t, off, "band:    false")
	require.Contains(t, off, "feature: none")
}

func TestQueryRejectsMissingSnapshot(t *testing.T) {
	cmd := queryCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--snapshot", filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}

func TestParamsMergeConfigAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hole.yaml")
	require.NoError(t, os.WriteFile(path, []byte("par: 5\nseed: 9\nintensity: 0.5\n"), 0o644))

	var hf holeFlags
	cmd := &cobra.Command{Use: "test"}
	hf.register(cmd)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--seed", "3"}))

	p, err := hf.params(cmd)
	require.NoError(t, err)
	require.Equal(t, 5, p.Par)
	require.Equal(t, int64(3), p.Seed)
	require.Equal(t, 0.5, p.Intensity)
	require.NotNil(t, p.Logger)

	// without a config file every flag applies, defaults included
	hf = holeFlags{}
	cmd = &cobra.Command{Use: "test"}
	hf.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--par", "3"}))
	p, err = hf.params(cmd)
	require.NoError(t, err)
	require.Equal(t, 3, p.Par)
	require.Equal(t, 1.0, p.Intensity)
	require.False(t, p.Dogleg)
}
