// Package spm implements SentencePiece unigram tokenization compatible with
// XLM-RoBERTa, as required by the SaT sentence boundary models.
//
// Model files are decoded directly from their protobuf wire format; only the
// vocabulary is read, trainer and normalizer specs are skipped.
package spm

import (
	"errors"
	"fmt"
	"math"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// PieceType mirrors ModelProto.SentencePiece.Type.
type PieceType int32

// Piece types as numbered in sentencepiece_model.proto.
const (
	Normal      PieceType = 1
	Unknown     PieceType = 2
	Control     PieceType = 3
	UserDefined PieceType = 4
	Unused      PieceType = 5
	Byte        PieceType = 6
)

// Piece represents a vocabulary piece from the model.
type Piece struct {
	Piece string
	Score float32
	Type  PieceType
}

// Model represents a loaded SentencePiece model.
type Model struct {
	Pieces []Piece
}

// Field numbers in sentencepiece_model.proto.
const (
	modelPiecesField = 1
	pieceTextField   = 1
	pieceScoreField  = 2
	pieceTypeField   = 3
)

// LoadModel loads a SentencePiece model from a .model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return ParseModel(data)
}

// ParseModel decodes a serialized ModelProto.
func ParseModel(b []byte) (*Model, error) {
	var m Model
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("parsing protobuf: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if num == modelPiecesField && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("parsing piece %d: %w", len(m.Pieces), protowire.ParseError(n))
			}
			p, err := parsePiece(v)
			if err != nil {
				return nil, fmt.Errorf("parsing piece %d: %w", len(m.Pieces), err)
			}
			m.Pieces = append(m.Pieces, p)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}

	if len(m.Pieces) == 0 {
		return nil, errors.New("parsing protobuf: model has no pieces")
	}
	return &m, nil
}

func parsePiece(b []byte) (Piece, error) {
	p := Piece{Type: Normal}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Piece{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == pieceTextField && typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(b)
			p.Piece = string(v)
		case num == pieceScoreField && typ == protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			p.Score = math.Float32frombits(v)
		case num == pieceTypeField && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			p.Type = PieceType(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return Piece{}, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return p, nil
}
