package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)
	type args struct {
		source Size
		target Size
	}
	tests := []struct {
		name  string
		args  args
		scale float64
	}{
		{name: "100x100->100x100", args: args{source: SizeOf(100, 100), target: SizeOf(100, 100)}, scale: 1.0},
		// Downscale
		{name: "200x200->100x100", args: args{source: SizeOf(200, 200), target: SizeOf(100, 100)}, scale: 0.5},
		{name: "400x300->100x100", args: args{source: SizeOf(400, 300), target: SizeOf(100, 100)}, scale: 0.25},
		{name: "300x400->100x100", args: args{source: SizeOf(300, 400), target: SizeOf(100, 100)}, scale: 0.25},
		{name: "600x600->300x400", args: args{source: SizeOf(600, 600), target: SizeOf(300, 400)}, scale: 0.5},
		// Upscale
		{name: "100x100->200x200", args: args{source: SizeOf(100, 100), target: SizeOf(200, 200)}, scale: 2.0},
		{name: "40x30  ->400x400", args: args{source: SizeOf(40, 30), target: SizeOf(400, 400)}, scale: 10.0},
		{name: "30x40  ->400x100", args: args{source: SizeOf(30, 40), target: SizeOf(400, 100)}, scale: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.InDelta(tt.scale, ScaleToFit(tt.args.source, tt.args.target), 1e-9)
		})
	}
}

func TestSize_Scaled(t *testing.T) {
	a := assert.New(t)

	t.Run("Identity", func(t *testing.T) {
		scaled := SizeOf(200, 100).Scaled(1.0)
		a.Equal(200.0, scaled.Width())
		a.Equal(100.0, scaled.Height())
	})
	t.Run("Half", func(t *testing.T) {
		scaled := SizeOf(200, 100).Scaled(0.5)
		a.Equal(100.0, scaled.Width())
		a.Equal(50.0, scaled.Height())
	})
}

func TestSize_IsValid(t *testing.T) {
	a := assert.New(t)

	t.Run("Positive", func(t *testing.T) {
		a.True(SizeOf(1, 1).IsValid())
	})
	t.Run("Zero width", func(t *testing.T) {
		a.False(SizeOf(0, 100).IsValid())
	})
	t.Run("Zero height", func(t *testing.T) {
		a.False(SizeOf(100, 0).IsValid())
	})
	t.Run("Negative", func(t *testing.T) {
		a.False(SizeOf(-100, 100).IsValid())
	})
	t.Run("Zero value", func(t *testing.T) {
		a.False(ZeroSize().IsValid())
	})
}
