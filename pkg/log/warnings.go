package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/yildizanil/emugo/pkg/errors"
)

// InstallZerologWarnSink routes library warnings raised through errors.Warn
// into a zerolog logger writing to w. Warnings that implement
// zerolog.LogObjectMarshaler (ConvergenceWarning, IllConditionedWarning) are
// emitted as structured objects, anything else as a plain message.
func InstallZerologWarnSink(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(obj).Msg("emulator warning")
			return
		}
		event.Err(warning).Msg("emulator warning")
	})
}
