package main

import (
	"errors"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/internal/logger"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

func toParties(pubs []cryptobox.PublicKey) []party.Party {
	out := make([]party.Party, len(pubs))
	for i, pub := range pubs {
		out[i] = party.Party{PublicKey: pub}
	}
	return out
}

// logOutcome logs the result of a CLI boundary operation (§7: the kind
// and a one-line human message), so compose/send/update/submit all
// flow through the same structured logger the rest of the module
// carries but previously never called.
func logOutcome(op string, err error, fields ...logger.Field) {
	if err == nil {
		logger.Info(op+" succeeded", fields...)
		return
	}

	var e *errs.Error
	if errors.As(err, &e) {
		logger.ErrorMsg(op+" failed", append(fields,
			logger.String("kind", string(e.Kind)),
			logger.String("code", string(e.Code)),
			logger.String("message", e.Message),
		)...)
		return
	}
	logger.ErrorMsg(op+" failed", append(fields, logger.Error(err))...)
}
