package common

const (
	DefaultProgramName = "pylaunch"
)

var (
	DefaultInterpreters = []string{"python", "python3"}
)

type ProcessArgs struct {
	Interpreter string
	Args        []string
	Env         []string
	InheritEnv  bool
	Dir         string
}
