package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Update the XDG user directories"
	MsgRootLong        = `xdg-user-dirs-update keeps the well known user directories (desktop,
downloads, music, ...) in sync with the system defaults. Missing entries are
created in the user's locale, directories that were removed are reassigned to
the home directory, and the result is written to user-dirs.dirs in the user
configuration directory.`
	MsgSetShort        = "Assign a directory to a single role"
	MsgSetLong         = "Set stores PATH for ROLE in user-dirs.dirs without touching the filesystem. PATH must be absolute."
	MsgListShort       = "List the assigned directories"
	MsgGetShort        = "Print the directory assigned to a role"
	MsgGetLong         = "Get prints the absolute directory for ROLE, or the home directory when ROLE is not assigned."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "xdg-user-dirs-update version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrSetArgs      = "--set requires a role and a path"
	MsgErrUnknownShell = "unknown shell %q, supported: bash, zsh, fish, powershell"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce       = "Reassign every directory from the defaults, ignoring the current settings"
	MsgFlagMove        = "Rename existing directories on disk when their location changes"
	MsgFlagDummyOutput = "Write the result to `PATH` instead of user-dirs.dirs, without creating directories"
	MsgFlagSet         = "Assign the directory given as argument to `ROLE`"
	MsgFlagFormat      = "Output format: auto, term, text, json, yaml, toml"
)

// Examples
const (
	MsgRootExample = `  # Create missing directories and update user-dirs.dirs
  xdg-user-dirs-update

  # Reassign everything to the defaults in the current locale, moving directories
  xdg-user-dirs-update --force --move

  # Preview the result
  xdg-user-dirs-update --force --dummy-output /tmp/user-dirs.dirs

  # Historic form of the set command
  xdg-user-dirs-update --set MUSIC "$HOME/Media/Music"`
	MsgSetExample = `  xdg-user-dirs-update set DOWNLOAD "$HOME/Incoming"`
	MsgGetExample = `  cd "$(xdg-user-dirs-update get DOWNLOAD)"`
)
