package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/tliron/commonlog"
	// import for side effects
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"

	"github.com/zephyrtronium/velo"
	"github.com/zephyrtronium/velo/config"
)

func main() {
	var (
		cfgPath    string
		encoding   string
		verbosity  int
		logFile    string
		cpuProfile string
		version    bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML settings file")
	flag.StringVar(&encoding, "encoding", "", "encoding of program output (overrides config)")
	flag.IntVar(&verbosity, "v", 0, "log verbosity; 2 traces evaluation (overrides config)")
	flag.StringVar(&logFile, "log", "", "log file instead of standard error (overrides config)")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	flag.BoolVar(&version, "version", false, "print the version banner and exit")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		util.FailOnError(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encoding":
			cfg.Encoding = encoding
		case "v":
			cfg.Trace.Verbosity = verbosity
		case "log":
			cfg.Trace.File = logFile
		}
	})
	if cfg.Trace.File != "" {
		commonlog.Configure(cfg.Trace.Verbosity, &cfg.Trace.File)
	} else {
		commonlog.Configure(cfg.Trace.Verbosity, nil)
	}
	log := commonlog.GetLogger("velo.cmd")

	enc, err := velo.LookupEncoding(cfg.Encoding)
	util.FailOnError(err)
	newVM := func() *velo.VM {
		vm := velo.NewVM()
		vm.Sink = velo.NewWriterSink(os.Stdout, enc)
		return vm
	}

	if version {
		fmt.Println(newVM().Banner(cfg.Banner.TimeFormat))
		util.Exit(0)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		util.FailOnError(err)
		util.OnExitError(f.Close)
		util.FailOnError(pprof.StartCPUProfile(f))
		util.OnExit(pprof.StopCPUProfile)
	}

	if flag.NArg() == 0 {
		repl(newVM(), cfg, os.Stdin, os.Stdout)
		util.Exit(0)
	}
	for _, path := range flag.Args() {
		log.Infof("running %s", path)
		if err := runFile(newVM(), path); err != nil {
			report(err)
			util.Exit(1)
		}
	}
	util.Exit(0)
}

// runFile evaluates the program in the file at path.
func runFile(vm *velo.VM, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = vm.DoReader(f, path)
	return err
}

// report writes an error to standard error, with the method stack if it is
// a Velo exception.
func report(err error) {
	var e *velo.Exception
	if errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, e.Report())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
