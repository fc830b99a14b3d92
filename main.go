// Copyright
// SPDX-License-Identifier: MIT
// wintitle: retitle editor windows from the active document + user templates
package main

import (
    "context"
    "errors"
    "fmt"
    "os"
    "os/exec"
    "os/signal"
    "path/filepath"
    "runtime"
    "strings"
    "syscall"

    "github.com/spf13/pflag"
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"

    "wintitle/internal/bridge"
    "wintitle/internal/config"
    "wintitle/internal/listener"
    "wintitle/internal/logging"
    "wintitle/internal/proc"
    "wintitle/internal/rename"
    "wintitle/internal/title"
    "wintitle/internal/tui"
    "wintitle/internal/tui/state"
    "wintitle/internal/tui/widgets/diff"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    var err error
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("wintitle", Version)
    case "run":
        err = cmdRun(os.Args[2:])
    case "preview":
        err = cmdPreview(os.Args[2:])
    case "tune":
        err = cmdTune(os.Args[2:])
    case "init":
        err = cmdInit(os.Args[2:])
    case "doctor":
        err = cmdDoctor(os.Args[2:])
    default:
        usage()
        os.Exit(2)
    }
    if err != nil {
        fmt.Fprintln(os.Stderr, "wintitle:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Println(`wintitle ` + Version + `
Retitles editor windows after the active document, using your own template.
USAGE
  wintitle <command> [options]
COMMANDS
  run          Read editor events (NDJSON) from stdin and rename windows
  preview      Print the editor title and the custom title for a sample document
  tune         Interactive template editor with live preview
  init         Write a commented settings file
  doctor       Check the rename backend for this platform
  help         Show help (try: wintitle help run)
  version      Print version
NOTES
  • Settings default to ` + config.DefaultPath() + `
  • Nothing is renamed until the editor reports its cache path ("paths" event).
`)
}

func helpTopic(name string) {
    switch name {
    case "run":
        fmt.Print(`USAGE
  wintitle run [--settings PATH] [--backend auto|native|helper|none] [--helper CMD]
               [--poll DURATION] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Reads one JSON event per line from stdin. Event types: paths, startup,
  activated, modified, post_save, window_closed, refresh. Settings changes
  are picked up without a restart and retitle every known window.
OPTIONS
  --settings PATH   Settings file (JSON with comments)
  --backend NAME    auto (native on Windows, helper on Linux) | native | helper | none
  --helper CMD      Helper command for the helper backend; receives <official> <desired>.
                    Default: bash script written to the editor's cache path.
  --poll DURATION   How often to check whether the editor is ready (default 1s)
  -v                INFO logs;  -vv DEBUG logs
  --log-file PATH   Append JSON logs to file (created if missing)
` + "\n")
    case "preview", "tune":
        fmt.Println(`USAGE
  wintitle ` + name + ` [--settings PATH] [--file PATH | --name NAME] [--dirty]
                  [--folder DIR ...] [--project-file PATH] [--template T] [--path-display MODE]
                  [--no-color]
DESCRIPTION
  Computes the title the editor would show for the sample document and the
  custom title your template produces. 'tune' lets you edit the template live
  and save it back to the settings file.
`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

type sampleFlags struct {
    settings    *string
    file        *string
    name        *string
    dirty       *bool
    folders     *[]string
    projectFile *string
    template    *string
    pathDisplay *string
    noColor     *bool
}

func addSampleFlags(fs *pflag.FlagSet) sampleFlags {
    return sampleFlags{
        settings:    fs.String("settings", config.DefaultPath(), "Settings file"),
        file:        fs.String("file", "", "Sample document path"),
        name:        fs.String("name", "", "Sample view name (overrides the path, like plugin-named views)"),
        dirty:       fs.Bool("dirty", false, "Sample document has unsaved changes"),
        folders:     fs.StringArray("folder", nil, "Open folder (repeatable); the first is the project root"),
        projectFile: fs.String("project-file", "", "Project file of the sample window"),
        template:    fs.String("template", "", "Override the template from settings"),
        pathDisplay: fs.String("path-display", "", "Override path_display (full|relative|shortest)"),
        noColor:     fs.Bool("no-color", false, "Disable colors (NO_COLOR is honored too)"),
    }
}

func (f sampleFlags) load() (config.Settings, title.Document, title.Window, error) {
    s, err := config.Load(*f.settings)
    if err != nil {
        return s, title.Document{}, title.Window{}, err
    }
    if *f.template != "" {
        s.Template = *f.template
    }
    if *f.pathDisplay != "" {
        s.PathDisplay = *f.pathDisplay
    }
    file := *f.file
    if file != "" {
        if abs, err := filepath.Abs(file); err == nil {
            file = abs
        }
    }
    doc := title.Document{ID: 1, Name: *f.name, FileName: file, Dirty: *f.dirty}
    win := title.Window{ID: 1, Folders: *f.folders, ProjectFileName: *f.projectFile}
    return s, doc, win, nil
}

func cmdPreview(args []string) error {
    fs := pflag.NewFlagSet("preview", pflag.ExitOnError)
    fs.Usage = func() { helpTopic("preview") }
    sf := addSampleFlags(fs)
    _ = fs.Parse(args)

    s, doc, win, err := sf.load()
    if err != nil {
        return err
    }
    t := title.Compute(doc, &win, s, homeDir())
    fmt.Printf("Editor: %s\n", t.Official)
    fmt.Printf("Custom: %s\n", t.Desired)
    if t.Project != "" {
        fmt.Printf("Project: %s\n", t.Project)
    }
    fmt.Println()
    fmt.Print(diff.NewDiffView(*sf.noColor).View(state.UIState{View: state.Unified}, t.Official, t.Desired))
    return nil
}

func cmdTune(args []string) error {
    fs := pflag.NewFlagSet("tune", pflag.ExitOnError)
    fs.Usage = func() { helpTopic("tune") }
    sf := addSampleFlags(fs)
    _ = fs.Parse(args)

    s, doc, win, err := sf.load()
    if err != nil {
        return err
    }
    if doc.FileName == "" && doc.Name == "" {
        if wd, err := os.Getwd(); err == nil {
            doc.FileName = filepath.Join(wd, "main.go")
            if len(win.Folders) == 0 {
                win.Folders = []string{wd}
            }
        }
    }
    res, err := tui.Run(tui.Options{
        Settings:     s,
        SettingsPath: *sf.settings,
        Sample:       doc,
        Window:       win,
        HomeDir:      homeDir(),
        NoColor:      *sf.noColor,
    })
    if err != nil {
        return err
    }
    if res.Saved {
        fmt.Println("Saved template:", res.Template)
    }
    return nil
}

func cmdInit(args []string) error {
    fs := pflag.NewFlagSet("init", pflag.ExitOnError)
    path := fs.String("settings", config.DefaultPath(), "Settings file to create")
    _ = fs.Parse(args)
    if err := config.WriteDefault(*path); err != nil {
        fmt.Println(*path, "already exists; not overwriting")
        return nil
    }
    fmt.Println("Wrote", *path)
    return nil
}

func cmdDoctor(args []string) error {
    fs := pflag.NewFlagSet("doctor", pflag.ExitOnError)
    path := fs.String("settings", config.DefaultPath(), "Settings file")
    backendFlag := fs.String("backend", rename.BackendAuto, "Backend to check")
    _ = fs.Parse(args)

    ok := true
    if _, err := os.Stat(*path); errors.Is(err, os.ErrNotExist) {
        fmt.Printf("  • settings %s not found; defaults apply (wintitle init)\n", *path)
    } else if _, err := config.Load(*path); err != nil {
        fmt.Printf("  ✗ settings: %v\n", err)
        ok = false
    } else {
        fmt.Printf("  ✓ settings %s\n", *path)
    }

    backend := rename.Resolve(*backendFlag, runtime.GOOS)
    fmt.Printf("Backend: %s (%s)\n", backend, runtime.GOOS)
    switch backend {
    case rename.BackendHelper:
        for _, bin := range []string{"bash", "xdotool"} {
            if _, err := exec.LookPath(bin); err != nil {
                fmt.Printf("  ✗ %s not found in PATH\n", bin)
                ok = false
            } else {
                fmt.Printf("  ✓ %s found\n", bin)
            }
        }
    case rename.BackendNative:
        if _, err := rename.NativeAPI(); err != nil {
            fmt.Printf("  ✗ %v\n", err)
            ok = false
        } else {
            fmt.Println("  ✓ window API available")
        }
    case rename.BackendNone:
        fmt.Println("  • titles will be computed but never applied")
    default:
        fmt.Printf("  ✗ unknown backend %q\n", *backendFlag)
        ok = false
    }
    if ok {
        fmt.Println("All checks passed.")
    } else {
        fmt.Println("Problems detected. Fix the items marked ✗ and retry.")
    }
    return nil
}

func cmdRun(args []string) error {
    fs := pflag.NewFlagSet("run", pflag.ExitOnError)
    fs.Usage = func() { helpTopic("run") }
    settingsPath := fs.String("settings", config.DefaultPath(), "Settings file")
    backendFlag := fs.String("backend", rename.BackendAuto, "auto|native|helper|none")
    helperCmd := fs.String("helper", "", "Helper command for the helper backend")
    poll := fs.Duration("poll", listener.DefaultPollInterval, "Readiness poll interval")
    verbose := fs.CountP("verbose", "v", "Verbose logs (-v INFO, -vv DEBUG)")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    _ = fs.Parse(args)

    logger, level, cleanup, err := logging.New(logging.Options{Verbosity: *verbose, LogFile: *logPath})
    if err != nil {
        return err
    }
    defer cleanup()
    baseLevel := level.Level()

    store, err := config.NewStore(*settingsPath)
    if err != nil {
        logger.Warn("settings unreadable, using defaults", zap.String("path", *settingsPath), zap.Error(err))
    }
    applyDebug := func(s config.Settings) {
        if s.Debug {
            level.SetLevel(zapcore.DebugLevel)
        } else {
            level.SetLevel(baseLevel)
        }
    }
    applyDebug(store.Get())

    runner := proc.NewRunner(logger.Named("helper"))
    helper := rename.NewHelperRenamer(runner, logger.Named("helper"), func() bool { return store.Get().Debug })
    if fields := strings.Fields(*helperCmd); len(fields) > 0 {
        helper.SetCommand(fields...)
    }
    renamer, backend, err := rename.Select(*backendFlag, helper)
    if err != nil {
        logger.Warn("rename backend unavailable; titles will not be applied", zap.String("backend", backend), zap.Error(err))
        renamer = rename.NopRenamer{}
    }
    logger.Info("starting", zap.String("version", Version), zap.String("backend", backend), zap.String("settings", *settingsPath))

    br := bridge.New(logger.Named("bridge"))
    l := listener.New(listener.Options{
        Renamer:      renamer,
        Settings:     store,
        Host:         br,
        Logger:       logger.Named("listener"),
        HomeDir:      homeDir(),
        PollInterval: *poll,
        OnReady: func(cachePath string) error {
            logger.Info("host paths", zap.String("cache_path", cachePath), zap.String("packages_path", br.PackagesPath()))
            if backend != rename.BackendHelper {
                return nil
            }
            p, err := helper.InstallHelper(cachePath)
            if err == nil {
                logger.Debug("helper script installed", zap.String("path", p))
            }
            return err
        },
        RefreshOnReady: backend == rename.BackendHelper,
    })

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    l.Start(ctx)

    go func() {
        err := store.Watch(ctx, func(s config.Settings) {
            applyDebug(s)
            logger.Info("settings reloaded")
            if l.IsReady() {
                l.RefreshAll(ctx)
            }
        }, func(err error) {
            logger.Warn("settings reload failed", zap.Error(err))
        })
        if err != nil {
            logger.Warn("settings watcher stopped", zap.Error(err))
        }
    }()

    err = br.Serve(ctx, os.Stdin, l)
    stop()
    if serr := runner.StopAll(context.Background()); serr != nil {
        logger.Debug("stopping helpers", zap.Error(serr))
    }
    return err
}

// homeDir evaluates HOME-style variables on each call; the editor reports
// paths as the user sees them, so ~ collapsing must use the same value.
func homeDir() string {
    home := strings.TrimSpace(os.Getenv("HOME"))
    if home == "" {
        drive := strings.TrimSpace(os.Getenv("HOMEDRIVE"))
        path := strings.TrimSpace(os.Getenv("HOMEPATH"))
        if drive != "" && path != "" {
            home = drive + path
        } else {
            home = strings.TrimSpace(os.Getenv("USERPROFILE"))
        }
    }
    if home != "" {
        return home
    }
    if h, err := os.UserHomeDir(); err == nil {
        return h
    }
    return ""
}
