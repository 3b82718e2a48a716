package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/ports"
)

// Tracks whose duration the target platform did not report count as 3.5 minutes.
const estimatedTrackSeconds = 210

// Assembler builds the mirror playlist for a finished match batch.
type Assembler struct {
	shareBaseURL string
	qr           ports.QRGenerator
	logger       *log.Logger

	newID func() string
	now   func() time.Time
}

// NewAssembler creates an assembler that publishes share links under
// shareBaseURL. qr may be nil, in which case no QR code is attached.
func NewAssembler(shareBaseURL string, qr ports.QRGenerator, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Assembler{
		shareBaseURL: shareBaseURL,
		qr:           qr,
		logger:       logger,
		newID:        func() string { return uuid.NewString()[:8] },
		now:          time.Now,
	}
}

// Assemble creates the target-platform playlist from the matched and partial
// verdicts of batch, keeping playlist order. A QR failure is logged and leaves
// QRCode empty.
func (a *Assembler) Assemble(source *domain.Playlist, batch domain.MatchBatch, target domain.Platform) domain.Playlist {
	id := a.newID()
	tracks := batch.MatchedTracks()

	duration := 0
	for _, t := range tracks {
		if t.DurationSeconds > 0 {
			duration += t.DurationSeconds
		} else {
			duration += estimatedTrackSeconds
		}
	}

	mirror := domain.Playlist{
		ID:            id,
		Title:         source.Title,
		Description:   fmt.Sprintf("Converted from %s by LinkPort", source.Platform),
		Platform:      target,
		OriginalURL:   platformURL(id, target),
		Tracks:        tracks,
		TotalDuration: duration,
		ShareableURL:  a.shareBaseURL + id,
		CreatedAt:     a.now().UTC(),
	}

	if a.qr != nil {
		code, err := a.qr.DataURL(mirror.ShareableURL)
		if err != nil {
			a.logger.Warn("could not render QR code", "playlist", id, "err", err)
		} else {
			mirror.QRCode = code
		}
	}

	return mirror
}

func platformURL(id string, platform domain.Platform) string {
	switch platform {
	case domain.PlatformYouTube:
		return "https://music.youtube.com/playlist?list=PLlinkport" + id
	case domain.PlatformSpotify:
		return "https://open.spotify.com/playlist/linkport" + id
	case domain.PlatformSoundCloud:
		return "https://soundcloud.com/linkport/sets/playlist-" + id
	case domain.PlatformApple:
		return "https://music.apple.com/playlist/linkport-" + id
	default:
		return "https://linkport.app/pl/" + id
	}
}
