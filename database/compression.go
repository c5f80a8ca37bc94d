package database

import (
	"runtime"

	_ "github.com/expki/go-constructsim/env"
	"github.com/klauspost/compress/zstd"
)

// Archive blobs are framed as single zstd segments without checksums, the
// decoder side must keep matching options.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithSingleSegment(true),
		zstd.WithEncoderCRC(false),
		zstd.WithEncoderConcurrency(runtime.NumCPU()),
		zstd.WithEncoderPadding(1),
		zstd.WithNoEntropyCompression(true),
	)
	if err != nil {
		panic(err)
	}
	zstdDecoder, err = zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(runtime.NumCPU()),
		zstd.IgnoreChecksum(true),
	)
	if err != nil {
		panic(err)
	}
}

func compress(in []byte) []byte {
	return zstdEncoder.EncodeAll(in, nil)
}

func decompress(in []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(in, nil)
}
