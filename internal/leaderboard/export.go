package leaderboard

import (
	"errors"

	"github.com/tidwall/sjson"
)

// MarshalRanked encodes already ranked records as {"players": [...]} with 1-based ranks
// and derived win rates. The output is itself accepted by Parse.
func MarshalRanked(ranked []PlayerRecord) ([]byte, error) {
	doc, errInit := sjson.SetRawBytes([]byte(`{}`), "players", []byte(`[]`))
	if errInit != nil {
		return nil, errors.Join(errInit, errExport)
	}

	for idx, record := range ranked {
		encoded, errRecord := MarshalRecord(idx+1, record)
		if errRecord != nil {
			return nil, errRecord
		}

		var err error
		if doc, err = sjson.SetRawBytes(doc, "players.-1", encoded); err != nil {
			return nil, errors.Join(err, errExport)
		}
	}

	return doc, nil
}

// MarshalRecord encodes a single record with its rank.
func MarshalRecord(rank int, record PlayerRecord) ([]byte, error) {
	doc := []byte(`{}`)
	values := map[string]any{
		"rank":       rank,
		"name":       record.Name,
		"winRecord":  record.WinRecord,
		"lossRecord": record.LossRecord,
		"rating":     record.Rating,
		"winRate":    record.WinRate(),
	}

	for _, key := range []string{"rank", "name", "winRecord", "lossRecord", "rating", "winRate"} {
		var err error
		if doc, err = sjson.SetBytes(doc, key, values[key]); err != nil {
			return nil, errors.Join(err, errExport)
		}
	}

	return doc, nil
}
