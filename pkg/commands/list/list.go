package list

import (
	"github.com/endlessm/xdg-user-dirs/pkg/commands/internal"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
)

// Options defines the options for the List command
type Options struct {
	Home string
}

// List loads the user mapping and checks every assigned directory
func List(opts Options) (*display.Listing, error) {
	log := logging.GetLogger("commands.list")

	s, err := internal.NewSession(opts.Home)
	if err != nil {
		return nil, err
	}
	loaded, err := s.Store.Load()
	if err != nil {
		return nil, err
	}

	listing := display.NewListing(s.Paths.Home(), s.FS, loaded.Mapping.Entries())
	log.Info().Str("command", "List").Int("entries", len(listing.Entries)).Int("missing", listing.Missing()).
		Msg("Command finished")
	return listing, nil
}
