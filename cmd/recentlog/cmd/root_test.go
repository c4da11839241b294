package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarp-shell/recentlog/internal/config"
	"github.com/yarp-shell/recentlog/internal/errors"
	"github.com/yarp-shell/recentlog/internal/platform"
)

// isolate gives the test its own config directory and clears RECENTLOG_*.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvLogDir, "")
	t.Setenv(config.EnvPattern, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv("NO_COLOR", "1")
	return home
}

func fakeEnv(goos, home string) envFunc {
	return func() (platform.Env, error) {
		return platform.Env{GOOS: goos, Home: home}, nil
	}
}

// yarpLogDir returns the linux yarp log directory under home, creating it.
func yarpLogDir(t *testing.T, home string) string {
	t.Helper()
	dir := filepath.Join(home, ".local", "share", "yarp", "logs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func writeLog(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

// execute runs a fresh root command and returns what it wrote.
func execute(t *testing.T, env envFunc, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(env)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_PrintsNewestLogFollowedByNewline(t *testing.T) {
	// Given: two logs where b.log is newer
	home := isolate(t)
	dir := yarpLogDir(t, home)
	now := time.Now()
	writeLog(t, dir, "a.log", "foo\n", now.Add(-time.Hour))
	writeLog(t, dir, "b.log", "bar\n", now)

	// When: running with no arguments
	stdout, _, err := execute(t, fakeEnv("linux", home))

	// Then: only b.log's content plus one newline is printed
	require.NoError(t, err)
	assert.Equal(t, "bar\n\n", stdout)
}

func TestRootCmd_WindowsLayout(t *testing.T) {
	// Given: a log in the windows yarp directory
	home := isolate(t)
	dir := filepath.Join(home, "AppData", "Roaming", "yarp", "logs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeLog(t, dir, "session.log", "hello", time.Now())

	// When: running as windows
	stdout, _, err := execute(t, fakeEnv("windows", home))

	// Then: the content is printed
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
}

func TestRootCmd_NoLogFiles_NoStdout(t *testing.T) {
	// Given: a home without any yarp logs
	home := isolate(t)

	// When: running
	stdout, _, err := execute(t, fakeEnv("linux", home))

	// Then: it fails with NoLogFiles and prints nothing to stdout
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNoLogFiles, errors.GetCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_UnsupportedPlatform_NoStdout(t *testing.T) {
	// Given: an unsupported OS
	home := isolate(t)

	// When: running
	stdout, _, err := execute(t, fakeEnv("darwin", home))

	// Then: it fails fast with UnsupportedPlatform
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnsupportedPlatform, errors.GetCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_EnvFailureIsReturned(t *testing.T) {
	// Given: an environment that cannot determine HOME
	isolate(t)
	boom := errors.ConfigError("cannot determine home directory", stderrors.New("boom"))
	env := func() (platform.Env, error) { return platform.Env{}, boom }

	// When: running
	stdout, _, err := execute(t, env)

	// Then: the environment error surfaces
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, stdout)
}

func TestRootCmd_DirFlagBypassesPlatform(t *testing.T) {
	// Given: an unsupported OS but an explicit --dir
	home := isolate(t)
	dir := t.TempDir()
	writeLog(t, dir, "x.log", "custom\n", time.Now())

	// When: running with --dir
	stdout, _, err := execute(t, fakeEnv("plan9", home), "--dir", dir)

	// Then: the directory is read without platform resolution
	require.NoError(t, err)
	assert.Equal(t, "custom\n\n", stdout)
}

func TestRootCmd_EnvDirAndFlagPrecedence(t *testing.T) {
	// Given: RECENTLOG_DIR and --dir pointing at different directories
	home := isolate(t)
	envDir := t.TempDir()
	flagDir := t.TempDir()
	writeLog(t, envDir, "a.log", "from env", time.Now())
	writeLog(t, flagDir, "a.log", "from flag", time.Now())
	t.Setenv(config.EnvLogDir, envDir)

	// When: running without and with --dir
	envOut, _, envErr := execute(t, fakeEnv("linux", home))
	flagOut, _, flagErr := execute(t, fakeEnv("linux", home), "--dir", flagDir)

	// Then: env beats the platform default and the flag beats env
	require.NoError(t, envErr)
	require.NoError(t, flagErr)
	assert.Equal(t, "from env\n", envOut)
	assert.Equal(t, "from flag\n", flagOut)
}

func TestRootCmd_ConfigFileSetsDir(t *testing.T) {
	// Given: a TOML config naming a log directory
	home := isolate(t)
	dir := t.TempDir()
	writeLog(t, dir, "a.log", "from config", time.Now())
	cfgPath := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_dir = '"+dir+"'\n"), 0o644))

	// When: running with --config
	stdout, _, err := execute(t, fakeEnv("linux", home), "--config", cfgPath)

	// Then: the configured directory is used
	require.NoError(t, err)
	assert.Equal(t, "from config\n", stdout)
}

func TestRootCmd_LinesFlag(t *testing.T) {
	// Given: a three line log
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "a.log", "one\ntwo\nthree\n", time.Now())

	// When: asking for the last two lines
	stdout, _, err := execute(t, fakeEnv("linux", home), "-n", "2")

	// Then: only those lines are printed
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\n\n", stdout)
}

func TestRootCmd_NegativeLinesRejected(t *testing.T) {
	home := isolate(t)

	stdout, _, err := execute(t, fakeEnv("linux", home), "--lines", "-1")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_PatternFlag(t *testing.T) {
	// Given: a .log and a newer .txt file
	home := isolate(t)
	dir := yarpLogDir(t, home)
	now := time.Now()
	writeLog(t, dir, "a.log", "log", now.Add(-time.Hour))
	writeLog(t, dir, "b.txt", "txt", now)

	// When: running with and without --pattern
	defaultOut, _, err := execute(t, fakeEnv("linux", home))
	require.NoError(t, err)
	txtOut, _, err := execute(t, fakeEnv("linux", home), "--pattern", "*.txt")
	require.NoError(t, err)

	// Then: the default ignores .txt and the pattern selects it
	assert.Equal(t, "log\n", defaultOut)
	assert.Equal(t, "txt\n", txtOut)
}

func TestRootCmd_PatternWithSeparatorRejected(t *testing.T) {
	home := isolate(t)

	_, _, err := execute(t, fakeEnv("linux", home), "--pattern", "sub/*.log")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	home := isolate(t)

	tests := [][]string{
		{"extra"},
		{"path", "extra"},
		{"list", "extra"},
		{"config", "show", "extra"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			stdout, _, err := execute(t, fakeEnv("linux", home), args...)

			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
			assert.Contains(t, err.Error(), `"extra"`)
			assert.Empty(t, stdout)
		})
	}
}

func TestRootCmd_UnknownFlagIsConfigError(t *testing.T) {
	home := isolate(t)

	_, _, err := execute(t, fakeEnv("linux", home), "--bogus")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestRootCmd_DebugLogsGoToStderr(t *testing.T) {
	// Given: a log to read
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "a.log", "content", time.Now())

	// When: running with --debug
	stdout, stderr, err := execute(t, fakeEnv("linux", home), "--debug")

	// Then: diagnostics land on stderr and stdout stays clean
	require.NoError(t, err)
	assert.Equal(t, "content\n", stdout)
	assert.Contains(t, stderr, "selected latest log")
	assert.Contains(t, stderr, `"level":"DEBUG"`)
}

func TestRootCmd_QuietByDefault(t *testing.T) {
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "a.log", "content", time.Now())

	_, stderr, err := execute(t, fakeEnv("linux", home))

	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRootCmd_LogFileReceivesDiagnostics(t *testing.T) {
	// Given: RECENTLOG_LOG_LEVEL=debug and a config with log_file
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "a.log", "content", time.Now())
	logFile := filepath.Join(home, "state", "recentlog.log")
	cfgPath := filepath.Join(home, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file: "+logFile+"\n"), 0o644))
	t.Setenv(config.EnvLogLevel, "debug")

	// When: running
	_, _, err := execute(t, fakeEnv("linux", home), "--config", cfgPath)

	// Then: the log file holds the debug records
	require.NoError(t, err)
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "read log")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	// Given: the root command
	cmd := NewRootCmd()

	// Then: every subcommand is registered
	for _, name := range []string{"list", "path", "view", "config", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	lines := cmd.Flags().Lookup("lines")
	require.NotNil(t, lines)
	assert.Equal(t, "n", lines.Shorthand)
	assert.Equal(t, "0", lines.DefValue)

	for _, name := range []string{"config", "debug", "dir", "pattern"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_LogFileInsideLogDirRejected(t *testing.T) {
	// Given: yarp.log in the log directory and a log_file next to it
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "yarp.log", "yarp content\n", time.Now().Add(-time.Minute))
	logFile := filepath.Join(dir, "recentlog.log")
	cfgPath := filepath.Join(home, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file: "+logFile+"\n"), 0o644))

	// When: running
	stdout, _, err := execute(t, fakeEnv("linux", home), "--config", cfgPath)

	// Then: the config is refused and the log file is never created
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
	assert.Empty(t, stdout)
	assert.NoFileExists(t, logFile)
}

func TestRootCmd_LogFileInLogDirWithOtherExtensionAllowed(t *testing.T) {
	// Given: a log_file in the log directory that the pattern does not match
	home := isolate(t)
	dir := yarpLogDir(t, home)
	writeLog(t, dir, "yarp.log", "yarp content\n", time.Now().Add(-time.Minute))
	logFile := filepath.Join(dir, "recentlog.jsonl")
	cfgPath := filepath.Join(home, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file: "+logFile+"\n"), 0o644))

	// When: running
	stdout, _, err := execute(t, fakeEnv("linux", home), "--config", cfgPath)

	// Then: yarp's log is still the one printed
	require.NoError(t, err)
	assert.Equal(t, "yarp content\n\n", stdout)
}

func TestCheckLogFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		logFile string
		pattern string
		wantErr bool
	}{
		{"unset", "", "*.log", false},
		{"matches in log dir", filepath.Join(dir, "recentlog.log"), "*.log", true},
		{"other extension", filepath.Join(dir, "recentlog.txt"), "*.log", false},
		{"custom pattern", filepath.Join(dir, "recentlog.txt"), "*.txt", true},
		{"subdirectory", filepath.Join(dir, "sub", "recentlog.log"), "*.log", false},
		{"elsewhere", filepath.Join(t.TempDir(), "recentlog.log"), "*.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLogFile(tt.logFile, dir, tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
