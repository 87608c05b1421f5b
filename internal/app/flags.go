package app

import "flag"

// Flags represents the command-line parameters for the application.
type Flags struct {
	ConfigPath string
	Account    string
	Friend     string
	RPC        string
	DataDir    string
	Offline    bool
	Scale      float64
	TPS        int
}

// NewFlags returns a Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{Scale: 1}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to config.yaml (empty = embedded defaults)")
	fs.StringVar(&f.Account, "account", f.Account, "account address (empty = ask the wallet)")
	fs.StringVar(&f.Friend, "friend", f.Friend, "friend address available for grafting")
	fs.StringVar(&f.RPC, "rpc", f.RPC, "override the read-only node RPC URL")
	fs.StringVar(&f.DataDir, "data-dir", f.DataDir, "override the state directory")
	fs.BoolVar(&f.Offline, "offline", f.Offline, "run without wallet or node; actions are logged, not submitted")
	fs.Float64Var(&f.Scale, "scale", f.Scale, "window size multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "override ticks per second (0 = config value)")
}
