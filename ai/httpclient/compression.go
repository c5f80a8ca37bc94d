package httpclient

import (
	_ "github.com/expki/go-constructsim/env"
	"github.com/expki/go-constructsim/logger"
	"github.com/klauspost/compress/zstd"
)

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
	)
	if err != nil {
		panic(err)
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
}

func Compress(in []byte) (out []byte) {
	out = zstdEncoder.EncodeAll(in, nil)
	logger.Sugar().Debugf("compressed request: %.2f%%", 100*(float32(len(out))/float32(len(in))))
	return out
}

func Decompress(in []byte) (out []byte, err error) {
	out, err = zstdDecoder.DecodeAll(in, nil)
	if err != nil {
		return nil, err
	}
	logger.Sugar().Debugf("decompressed response: %.2f%%", 100*(float32(len(in))/float32(len(out))))
	return out, nil
}
