package cmd

import (
	"DotEnv/internal/config"
	"DotEnv/internal/envstore"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// setupExecutor redirects stdout to a buffer and the environment to an
// in-memory store seeded with seed.
func setupExecutor(t *testing.T, seed map[string]string) (*bytes.Buffer, *envstore.Map) {
	t.Helper()

	var buf bytes.Buffer
	store := envstore.NewMap(seed)

	oldStdout, oldStore := stdout, newStore
	stdout = &buf
	newStore = func() envstore.Store { return store }
	t.Cleanup(func() {
		stdout, newStore = oldStdout, oldStore
	})
	return &buf, store
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(envFile string) config.AppConfig {
	conf := config.Defaults()
	conf.Load.File = envFile
	conf.EnvFile = envFile
	return conf
}

func run(t *testing.T, conf config.AppConfig, args ...string) int {
	t.Helper()
	groups, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	return Execute(context.Background(), conf, groups)
}

func TestExecuteEnv(t *testing.T) {
	buf, store := setupExecutor(t, map[string]string{"BASE": "/srv"})
	path := writeEnvFile(t, "# comment\nAPP=demo\nDIR=$BASE/$APP\nEMPTY=\n")

	if code := run(t, testConfig(path), "-e", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	want := "APP = demo\nDIR = /srv/demo\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if _, ok := store.Lookup("EMPTY"); ok {
		t.Error("EMPTY should not be set")
	}
}

func TestExecuteNoOverwrite(t *testing.T) {
	_, store := setupExecutor(t, map[string]string{"APP": "old"})
	path := writeEnvFile(t, "APP=new\n")

	if code := run(t, testConfig(path), "-n", "-e", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if v, _ := store.Lookup("APP"); v != "old" {
		t.Errorf("APP = %q, want old", v)
	}

	// Modifiers only apply to their own command
	if code := run(t, testConfig(path), "-n", "-l", "-e", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if v, _ := store.Lookup("APP"); v != "new" {
		t.Errorf("APP = %q, want new", v)
	}
}

func TestExecuteMalformed(t *testing.T) {
	path := writeEnvFile(t, "A=1\nbroken\nB=2\n")

	_, store := setupExecutor(t, nil)
	if code := run(t, testConfig(path), "-e", path); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if _, ok := store.Lookup("A"); !ok {
		t.Error("A should stay set after the malformed line")
	}
	if _, ok := store.Lookup("B"); ok {
		t.Error("B should not be set")
	}

	_, store = setupExecutor(t, nil)
	if code := run(t, testConfig(path), "-k", "-e", path); code != 0 {
		t.Errorf("exit code with -k = %d, want 0", code)
	}
	if _, ok := store.Lookup("B"); !ok {
		t.Error("B should be set with -k")
	}
}

func TestExecuteNoSubstitute(t *testing.T) {
	_, store := setupExecutor(t, map[string]string{"HOME": "/home/me"})
	path := writeEnvFile(t, "P=$HOME/bin\n")

	if code := run(t, testConfig(path), "-N", "-e", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if v, _ := store.Lookup("P"); v != "$HOME/bin" {
		t.Errorf("P = %q, want literal $HOME/bin", v)
	}
}

func TestExecuteListJSON(t *testing.T) {
	buf, _ := setupExecutor(t, nil)
	path := writeEnvFile(t, "B=2\nA=1\nB=3\n")

	if code := run(t, testConfig(path), "-o", "json", "-l", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	var names []string
	if err := json.Unmarshal(buf.Bytes(), &names); err != nil {
		t.Fatalf("output is not a JSON list: %v\n%s", err, buf.String())
	}
	if strings.Join(names, ",") != "B,A" {
		t.Errorf("names = %v, want [B A]", names)
	}
}

func TestExecuteListAll(t *testing.T) {
	buf, _ := setupExecutor(t, map[string]string{"Z": "1", "A": "2"})

	if code := run(t, testConfig(""), "-L"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if buf.String() != "A\nZ\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExecuteGet(t *testing.T) {
	buf, _ := setupExecutor(t, map[string]string{"HOST": "localhost", "PORT": "80"})
	conf := testConfig("")

	if code := run(t, conf, "-g", "HOST", "PORT", "--get-or", "MISSING", "fallback"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if buf.String() != "localhost\n80\nfallback\n" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if code := run(t, conf, "--get", "MISSING"); code != 1 {
		t.Errorf("exit code for unset variable = %d, want 1", code)
	}
}

func TestExecuteBadOutputFormat(t *testing.T) {
	setupExecutor(t, nil)
	if code := run(t, testConfig(""), "-o", "xml"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestExecuteStopsOnError(t *testing.T) {
	buf, _ := setupExecutor(t, map[string]string{"A": "1"})
	missing := filepath.Join(t.TempDir(), "missing.env")

	if code := run(t, testConfig(missing), "-e", missing, "-g", "A"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if buf.Len() != 0 {
		t.Errorf("commands after the failure ran: %q", buf.String())
	}
}

func TestExecuteDefault(t *testing.T) {
	buf, _ := setupExecutor(t, map[string]string{"HOME": "/home/me"})
	path := writeEnvFile(t, "NAME=value\n")

	if code := run(t, testConfig(path)); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "NAME = value\n/home/me\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestExecuteTable(t *testing.T) {
	buf, _ := setupExecutor(t, nil)
	path := writeEnvFile(t, "KEY=secret\n")

	if code := run(t, testConfig(path), "-t", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	out := buf.String()
	for _, want := range []string{"Variable", "KEY", "secret"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestExecuteWatch(t *testing.T) {
	buf, store := setupExecutor(t, nil)
	path := writeEnvFile(t, "MODE=first\n")

	oldWatch := watchFile
	t.Cleanup(func() { watchFile = oldWatch })
	watchFile = func(ctx context.Context, p string, _ time.Duration, onChange func(context.Context) error) error {
		if err := os.WriteFile(p, []byte("MODE=second\n"), 0644); err != nil {
			return err
		}
		return onChange(ctx)
	}

	if code := run(t, testConfig(path), "-n", "-w", path); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if v, _ := store.Lookup("MODE"); v != "second" {
		t.Errorf("MODE = %q, want second", v)
	}
	if buf.String() != "MODE = first\nMODE = second\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExecuteExec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	setupExecutor(t, nil)
	path := writeEnvFile(t, "GREETING=hello\n")
	conf := testConfig(path)

	if code := run(t, conf, "-e", path, "--exec", "sh", "-c", `test "$GREETING" = hello`); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if code := run(t, conf, "--exec", "sh", "-c", "exit 3"); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestExecuteFileGivenWithEquals(t *testing.T) {
	def := writeEnvFile(t, "FROM_DEFAULT=1\n")
	custom := writeEnvFile(t, "FROM_CUSTOM=1\n")

	for _, cmd := range []string{"--env", "--list", "--table"} {
		t.Run(cmd, func(t *testing.T) {
			_, store := setupExecutor(t, nil)

			if code := run(t, testConfig(def), cmd+"="+custom); code != 0 {
				t.Fatalf("exit code = %d", code)
			}
			if _, ok := store.Lookup("FROM_CUSTOM"); !ok {
				t.Errorf("%s=FILE did not load FILE", cmd)
			}
			if _, ok := store.Lookup("FROM_DEFAULT"); ok {
				t.Errorf("%s=FILE loaded the configured file", cmd)
			}
		})
	}
}

func TestExecuteWatchFileGivenWithEquals(t *testing.T) {
	_, store := setupExecutor(t, nil)
	def := writeEnvFile(t, "FROM_DEFAULT=1\n")
	custom := writeEnvFile(t, "FROM_CUSTOM=1\n")

	var watched string
	oldWatch := watchFile
	t.Cleanup(func() { watchFile = oldWatch })
	watchFile = func(_ context.Context, p string, _ time.Duration, _ func(context.Context) error) error {
		watched = p
		return nil
	}

	if code := run(t, testConfig(def), "--watch="+custom); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if watched != custom {
		t.Errorf("watched %q, want %q", watched, custom)
	}
	if _, ok := store.Lookup("FROM_CUSTOM"); !ok {
		t.Error("FROM_CUSTOM not loaded")
	}
}
