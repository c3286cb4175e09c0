package main

import (
	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/application/replay"
	"github.com/younwookim/planetonomy/internal/application/session"
	"github.com/younwookim/planetonomy/internal/application/state"
)

// loadReplay opens a recording. The recorded stage wins over the
// requested one so the inputs replay on the map they were made on.
func loadReplay(path, stage string) (*replay.Replayer, string, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, "", err
	}

	if data.Stage != "" {
		stage = data.Stage
	}
	return replay.NewReplayer(*data), stage, nil
}

// autoRecordName makes -record pick a timestamped file name
const autoRecordName = "auto"

func recordPath(flagValue string) string {
	if flagValue == autoRecordName {
		return replay.GenerateFilename()
	}
	return flagValue
}

// runHeadless plays the whole recording into sess without rendering
func runHeadless(sess *session.Session, r *replay.Replayer, logger *zap.Logger) state.Outcome {
	outcome := r.Play(sess)

	logger.Info("replay finished",
		zap.Stringer("outcome", outcome),
		zap.Int("ticks", sess.Tick()),
		zap.Int("frames", r.TotalFrames()),
		zap.Bool("complete", r.Done()),
	)
	return outcome
}
