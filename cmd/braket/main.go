package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/oklog/run"

	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/oqtopus-team/oqtopus-braket/log"
	"github.com/oqtopus-team/oqtopus-braket/runner"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var app *App

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	app = &App{}
	setParser(app)
}

type App struct {
	Conf *core.Conf
}

func setParser(a *App) {
	parser = flags.NewParser(a, flags.Default)
	parser.ShortDescription = "oqtopus braket"
	parser.LongDescription = "runs quantum circuits on Amazon Braket devices and local simulators."
	parser.AddCommand("run", "run a circuit", "run a circuit and print the measured counts", &runCmd{})
	parser.AddCommand("expectation", "compute expectation values",
		"compute the exact expectation values of an operator on the final state of a circuit", &expectationCmd{})
	parser.AddCommand("devices", "list devices", "list the Braket devices visible to the configured account", &devicesCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to parse flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

func main() {
	parse()
}

type settings struct {
	braket *runner.BraketSetting
	local  *runner.LocalSetting
}

// setup prepares logging and settings shared by every command.
func (a *App) setup() (*settings, func(), error) {
	logger := log.SetZap(a.Conf)
	core.SetVersion(a.Conf, versionByBuildFlag)

	core.ResetSetting()
	runner.RegisterSettings()
	zap.L().Debug("Registered setting")
	if _, err := os.Stat(a.Conf.SettingPath); err != nil {
		zap.L().Warn(fmt.Sprintf("setting file %s is not found, using defaults", a.Conf.SettingPath))
	} else if err := core.ParseSettingFromPath(a.Conf.SettingPath); err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse settings/reason:%s", err))
		logger.Sync()
		return nil, nil, err
	}
	local, bs, err := runner.RegisteredSettings()
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	s := &settings{braket: bs, local: local}
	core.SetInfo(a.Conf)

	if a.Conf.EnableMetricsLog {
		if err := log.SetupMetricsLog(a.Conf.MetricsLogDir); err != nil {
			zap.L().Error(fmt.Sprintf("failed to setup metrics log/reason:%s", err))
			logger.Sync()
			return nil, nil, err
		}
	}
	teardown := func() {
		log.CloseMetricsLog()
		logger.Sync()
	}
	return s, teardown, nil
}

func (a *App) provideDIContainer(ctx context.Context, s *settings) (*dig.Container, error) {
	c := dig.New()
	err := c.Provide(func() (*braket.Session, error) {
		return braket.LoadSession(ctx, s.braket.SessionParams())
	})
	if err != nil {
		return nil, err
	}
	err = c.Provide(func() (core.CircuitRunner, error) {
		switch a.Conf.Runner {
		case "local", "aws":
			return runner.NewRunnerFromSetting(ctx, a.Conf.Runner, s.local, s.braket)
		default:
			return nil, fmt.Errorf("%s is an unknown runner", a.Conf.Runner)
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// execute runs f in a run group together with an interrupt handler.
func (a *App) execute(f func(ctx context.Context, c *dig.Container) error) error {
	s, teardown, err := a.setup()
	if err != nil {
		return err
	}
	defer teardown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	zap.L().Debug("Providing DI Container")
	container, err := a.provideDIContainer(ctx, s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return err
	}

	var g run.Group
	g.Add(func() error {
		return f(ctx, container)
	}, func(error) {
		cancel()
	})
	g.Add(run.SignalHandler(ctx, os.Interrupt))
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "execution error:%v\n", err)
		return err
	}
	return nil
}

type runCmd struct {
	Circuit string `long:"circuit" description:"circuit json file" required:"true"`
	Shots   int    `long:"shots" description:"number of shots" default:"1000"`
}

func (c *runCmd) Execute(args []string) error {
	return app.execute(func(ctx context.Context, container *dig.Container) error {
		circuit, err := core.LoadCircuit(c.Circuit)
		if err != nil {
			return err
		}
		return container.Invoke(func(r core.CircuitRunner) error {
			m, err := r.RunAndMeasure(ctx, circuit, c.Shots)
			if err != nil {
				zap.L().Error(fmt.Sprintf("failed to run circuit/reason:%s", err))
				return err
			}
			fmt.Println(m.ToString())
			return nil
		})
	})
}

type expectationCmd struct {
	Circuit  string `long:"circuit" description:"circuit json file" required:"true"`
	Operator string `long:"operator" description:"operator json file" required:"true"`
	Noisy    bool   `long:"noisy" description:"apply the configured noise model"`
}

func (c *expectationCmd) Execute(args []string) error {
	return app.execute(func(ctx context.Context, container *dig.Container) error {
		circuit, err := core.LoadCircuit(c.Circuit)
		if err != nil {
			return err
		}
		op, err := core.LoadOperator(c.Operator)
		if err != nil {
			return err
		}
		return container.Invoke(func(r core.CircuitRunner) error {
			var ev *core.ExpectationValues
			if c.Noisy {
				ev, err = r.GetExactNoisyExpectationValues(ctx, circuit, op, nil)
			} else {
				ev, err = r.GetExactExpectationValues(ctx, circuit, op, nil)
			}
			if err != nil {
				zap.L().Error(fmt.Sprintf("failed to compute expectation values/reason:%s", err))
				return err
			}
			fmt.Println(ev.ToString())
			return nil
		})
	})
}

type devicesCmd struct {
	Type string `long:"type" description:"device type" default:"ALL" choice:"ALL" choice:"QPU" choice:"SIMULATOR"`
}

func (c *devicesCmd) Execute(args []string) error {
	return app.execute(func(ctx context.Context, container *dig.Container) error {
		return container.Invoke(func(sess *braket.Session) error {
			var names []string
			var err error
			switch c.Type {
			case string(braket.DeviceTypeQPU):
				names, err = runner.GetQPUNames(ctx, sess)
			case string(braket.DeviceTypeSimulator):
				names, err = runner.GetSimulatorNames(ctx, sess)
			default:
				names, err = braket.DeviceNames(ctx, sess, braket.DeviceTypeAny)
			}
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		})
	})
}
