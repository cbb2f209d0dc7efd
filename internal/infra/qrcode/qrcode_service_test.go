package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"civicradar/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	out, err := svc.GeneratePNG("https://civicradar.example/experiences/5f0c")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestQRCodeService_GeneratePNG_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	out, err := svc.GeneratePNG("hello")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, out[:4])
}

func TestQRCodeService_GeneratePNG_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	out, err := svc.GeneratePNG("")
	assert.Error(t, err)
	assert.Nil(t, out)
}
