package extractor

import (
	"github.com/tubex-cli/tubex/fault"
	"github.com/tubex-cli/tubex/filesystem"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/network"
	"github.com/tubex-cli/tubex/quality"
)

// DownloadThumbnail fetches the thumbnail of tier and writes it to path.
func (s *Session) DownloadThumbnail(path string, tier quality.Tier) <-chan ThumbnailReady {
	out := make(chan ThumbnailReady, 1)
	fail := func(err error) <-chan ThumbnailReady {
		s.err = err
		out <- ThumbnailReady{Path: path, Tier: tier, Err: err}
		close(out)
		return out
	}

	if path == "" {
		return fail(fault.New(fault.File, "thumbnail path is empty"))
	}

	link := s.ThumbnailURL(tier)
	if link == "" {
		return fail(fault.Newf(fault.URL, "no %s thumbnail", tier))
	}

	s.err = nil
	responses := s.fetcher.Fetch(link, network.TagThumbnail)

	go func() {
		defer close(out)
		s.err = s.handle(<-responses, path)
		out <- ThumbnailReady{Path: path, Tier: tier, Err: s.err}
	}()

	return out
}

func writeThumbnail(path string, data []byte) error {
	f, err := filesystem.OpenForWrite(path)
	if err != nil {
		return fault.Wrap(fault.File, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fault.Wrap(fault.File, err)
	}

	if err := f.Close(); err != nil {
		return fault.Wrap(fault.File, err)
	}

	log.Infof("thumbnail written to %s", path)
	return nil
}
