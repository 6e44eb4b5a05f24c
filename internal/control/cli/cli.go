// Package cli provides the command-line interface for iljeong.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	Config string `long:"config" description:"Path to the config file" value-name:"<FILE>"`

	AddCommand      AddCommand      `command:"add" subcommands-optional:"true"`
	ListCommand     ListCommand     `command:"list" subcommands-optional:"true"`
	RemoveCommand   RemoveCommand   `command:"rm" subcommands-optional:"true"`
	WatchCommand    WatchCommand    `command:"watch" subcommands-optional:"true"`
	ExportCommand   ExportCommand   `command:"export" subcommands-optional:"true"`
	HolidaysCommand HolidaysCommand `command:"holidays" subcommands-optional:"true"`
	VersionCommand  VersionCommand  `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
