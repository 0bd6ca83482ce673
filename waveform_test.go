package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-waveform/internal/testutil"
)

// =============================================================================
// Buffer
// =============================================================================

func TestNew_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	b := New(src)
	src[0] = 99

	assert.InDelta(t, 1.0, b.At(0), 0)
	assert.Equal(t, 3, b.Len())
}

func TestSamples_ReturnsCopy(t *testing.T) {
	b := New([]float64{1, 2, 3})
	s := b.Samples()
	s[0] = 99

	assert.InDelta(t, 1.0, b.At(0), 0)
}

func TestZeroValueBuffer(t *testing.T) {
	var b Buffer

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Samples())
	assert.Equal(t, 0, b.Rectify().Len())
	assert.Equal(t, 0, b.HighPass().Len())
}

func TestFromFloat32_RoundTrip(t *testing.T) {
	b := FromFloat32([]float32{0.5, -0.25, 1})

	assert.Equal(t, []float64{0.5, -0.25, 1}, b.Samples())
	assert.Equal(t, []float32{0.5, -0.25, 1}, b.Float32())
}

func TestAll_YieldsInOrder(t *testing.T) {
	b := New([]float64{3, 1, 2})

	var got []float64
	for i, v := range b.All() {
		assert.Len(t, got, i)
		got = append(got, v)
	}
	assert.Equal(t, []float64{3, 1, 2}, got)
}

// =============================================================================
// Reference scenarios
// =============================================================================

func TestDownsample_Reference(t *testing.T) {
	out, err := New([]float64{0.2, 0.6, -0.2, 0.5, 1.0}).Downsample(2)
	require.NoError(t, err)

	testutil.AssertSamplesInDelta(t, []float64{0.4, 0.15}, out.Samples(), testutil.DefaultTolerance)
}

func TestUpsample_Reference(t *testing.T) {
	out, err := New([]float64{0.2, 0.6, -0.2}).Upsample(2)
	require.NoError(t, err)

	testutil.AssertSamplesInDelta(t,
		[]float64{0.2, 0.4, 0.6, 0.2, -0.2, -0.2}, out.Samples(), testutil.DefaultTolerance)
}

func TestHighPass_Reference(t *testing.T) {
	out := New([]float64{-1, 1, 0.4, -0.7}).HighPass()

	testutil.AssertSamplesInDelta(t, []float64{-1, 0.3, 0.55, 0}, out.Samples(), testutil.DefaultTolerance)
}

func TestRectify_Reference(t *testing.T) {
	out := New([]float64{-1, 0.4, 1, -0.1, 0}).Rectify()

	assert.Equal(t, []float64{1, 0.4, 1, 0.1, 0}, out.Samples())
}

func TestEnvelope_RisingOnly(t *testing.T) {
	out, err := New([]float64{-4, 12, -16}).Envelope(0.25, 0)
	require.NoError(t, err)

	env0 := 0*0.75 + 4*0.25
	env1 := env0*0.75 + 12*0.25
	env2 := env1*0.75 + 16*0.25
	testutil.AssertSamplesInDelta(t, []float64{env0, env1, env2}, out.Samples(), testutil.DefaultTolerance)
}

func TestEnvelope_SnapAndDecay(t *testing.T) {
	out, err := New([]float64{256, 255, 63, 15, 5}).Envelope(1, 0.25)
	require.NoError(t, err)

	testutil.AssertSamplesInDelta(t, []float64{256, 64, 16, 4, 5}, out.Samples(), testutil.DefaultTolerance)
}

func TestTrigger_Reference(t *testing.T) {
	out, err := New([]float64{0.5, 0.4, 0.3, 0.2, -0.3, -0.2, 0, 0.7}).Trigger(-0.1, 0.4)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 1}, out.Samples())
}

// =============================================================================
// Length invariants
// =============================================================================

func TestLengthInvariants(t *testing.T) {
	lengths := []int{0, 1, 2, 7, 8, 9, 100}
	factors := []int{1, 2, 3, 8, 16}

	for _, n := range lengths {
		b := New(testutil.Sine(n, 10))
		for _, k := range factors {
			down, err := b.Downsample(k)
			require.NoError(t, err)
			testutil.AssertLengthEquals(t, down.Samples(), n/k, "downsample n=%d k=%d", n, k)
			testutil.AssertNoNaNOrInf(t, down.Samples())

			up, err := b.Upsample(k)
			require.NoError(t, err)
			testutil.AssertLengthEquals(t, up.Samples(), n*k, "upsample n=%d k=%d", n, k)
			testutil.AssertNoNaNOrInf(t, up.Samples())

			low, err := b.LowPass(k)
			require.NoError(t, err)
			testutil.AssertLengthEquals(t, low.Samples(), (n/k)*k, "lowpass n=%d k=%d", n, k)
			testutil.AssertNoNaNOrInf(t, low.Samples())
		}

		testutil.AssertLengthEquals(t, b.HighPass().Samples(), n, "highpass n=%d", n)
		testutil.AssertLengthEquals(t, b.Rectify().Samples(), n, "rectify n=%d", n)

		env := b.DefaultEnvelope().Samples()
		testutil.AssertLengthEquals(t, env, n, "envelope n=%d", n)
		testutil.AssertNoNaNOrInf(t, env)

		gate, err := b.Trigger(-0.5, 0.5)
		require.NoError(t, err)
		testutil.AssertLengthEquals(t, gate.Samples(), n, "trigger n=%d", n)
	}
}

func TestDownsample_FactorLargerThanLength(t *testing.T) {
	out, err := New([]float64{1, 2, 3}).Downsample(4)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestFactorOne_IsIdentity(t *testing.T) {
	b := New([]float64{0.3, -0.1, 0.8})

	down, err := b.Downsample(1)
	require.NoError(t, err)
	testutil.AssertSamplesInDelta(t, b.Samples(), down.Samples(), testutil.DefaultTolerance)

	up, err := b.Upsample(1)
	require.NoError(t, err)
	testutil.AssertSamplesInDelta(t, b.Samples(), up.Samples(), testutil.DefaultTolerance)
}

func TestUpsample_SingleSampleHolds(t *testing.T) {
	out, err := New([]float64{0.7}).Upsample(4)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.7, 0.7, 0.7, 0.7}, out.Samples())
}

func TestHighPass_LastSampleZero(t *testing.T) {
	assert.Equal(t, []float64{0}, New([]float64{5}).HighPass().Samples())
}

// =============================================================================
// Validation
// =============================================================================

func TestInvalidFactor(t *testing.T) {
	b := New([]float64{1, 2, 3, 4})

	for _, k := range []int{0, -1, -8} {
		_, err := b.Downsample(k)
		require.ErrorIs(t, err, ErrInvalidArgument, "downsample k=%d", k)

		_, err = b.Upsample(k)
		require.ErrorIs(t, err, ErrInvalidArgument, "upsample k=%d", k)

		_, err = b.LowPass(k)
		require.ErrorIs(t, err, ErrInvalidArgument, "lowpass k=%d", k)

		_, _, err = b.Bands(k)
		require.ErrorIs(t, err, ErrInvalidArgument, "bands k=%d", k)
	}
}

func TestUpsample_OverflowingFactor(t *testing.T) {
	b := New([]float64{1, 2})
	huge := math.MaxInt/2 + 1

	_, err := b.Upsample(huge)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = UpsampleFloat32([]float32{1, 2}, huge)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPipeline().Upsample(huge).Run(b)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Largest factor whose output length still fits is accepted by validation.
	require.NoError(t, validateUpsample(2, math.MaxInt/2))

	// An empty buffer upsamples to nothing for any factor.
	out, err := Buffer{}.Upsample(math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	// LowPass never grows the buffer, so huge factors yield an empty result.
	low, err := b.LowPass(math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 0, low.Len())
}

func TestEnvelope_InvalidParameters(t *testing.T) {
	b := New([]float64{1, 2, 3})

	tests := []struct {
		name           string
		responsiveness float64
		dampening      float64
	}{
		{"negative responsiveness", -0.1, 0.5},
		{"responsiveness above one", 1.1, 0.5},
		{"negative dampening", 0.5, -0.1},
		{"dampening above one", 0.5, 1.5},
		{"NaN responsiveness", math.NaN(), 0.5},
		{"NaN dampening", 0.5, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Envelope(tt.responsiveness, tt.dampening)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestEnvelope_BoundaryParameters(t *testing.T) {
	b := New([]float64{1, -2, 0.5})

	for _, p := range [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		out, err := b.Envelope(p[0], p[1])
		require.NoError(t, err, "params %v", p)
		testutil.AssertNonNegative(t, out.Samples())
	}

	// Zero responsiveness never leaves the initial state.
	out, err := b.Envelope(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, out.Samples())
}

func TestTrigger_InvalidThresholds(t *testing.T) {
	b := New([]float64{1, 2, 3})

	_, err := b.Trigger(0.5, 0.1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = b.Trigger(math.NaN(), 0.1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = b.Trigger(0, math.NaN())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTrigger_EqualThresholds(t *testing.T) {
	out, err := New([]float64{0.5, 0.6, 0.5, 0.4}).Trigger(0.5, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 1, 0}, out.Samples())
}

// =============================================================================
// Properties
// =============================================================================

func TestTransforms_DoNotMutateInput(t *testing.T) {
	input := testutil.Sine(64, 9)
	b := New(input)

	_, _ = b.Downsample(4)
	_, _ = b.Upsample(3)
	_, _ = b.LowPass(8)
	_ = b.HighPass()
	_ = b.Rectify()
	_, _ = b.Envelope(0.3, 0.9)
	_, _ = b.Trigger(-0.2, 0.2)
	_ = b.Normalize()

	assert.Equal(t, input, b.Samples())
}

func TestEnvelope_NonNegative(t *testing.T) {
	b := New(testutil.Sine(500, 37))

	testutil.AssertNonNegative(t, b.DefaultEnvelope().Samples())
}

func TestTrigger_Binary(t *testing.T) {
	out, err := New(testutil.Sine(500, 23)).Trigger(-0.3, 0.3)
	require.NoError(t, err)

	testutil.AssertBinary(t, out.Samples())
}

func TestRectify_Idempotent(t *testing.T) {
	once := New(testutil.Sine(100, 7)).Rectify()

	assert.True(t, once.Equal(once.Rectify()))
}

func TestDownsample_ConstantSignal(t *testing.T) {
	b := New([]float64{0.25, 0.25, 0.25, 0.25, 0.25, 0.25})

	out, err := b.Downsample(3)
	require.NoError(t, err)
	testutil.AssertSamplesInDelta(t, []float64{0.25, 0.25}, out.Samples(), testutil.DefaultTolerance)
}

func TestUpsample_PreservesOriginalSamples(t *testing.T) {
	input := testutil.Sine(20, 6)
	const k = 5

	out, err := New(input).Upsample(k)
	require.NoError(t, err)
	for i, v := range input {
		assert.InDelta(t, v, out.At(i*k), testutil.DefaultTolerance, "sample %d", i)
	}
}

func TestDefaultEnvelope_MatchesExplicitDefaults(t *testing.T) {
	b := New(testutil.Sine(200, 13))

	explicit, err := b.Envelope(DefaultEnvelopeResponsiveness, DefaultEnvelopeDampening)
	require.NoError(t, err)
	assert.True(t, explicit.Equal(b.DefaultEnvelope()))
}

func TestBands(t *testing.T) {
	b := New(testutil.Sine(64, 16))

	low, high, err := b.Bands(DefaultLowPassFactor)
	require.NoError(t, err)

	wantLow, err := b.LowPass(DefaultLowPassFactor)
	require.NoError(t, err)
	assert.True(t, low.Equal(wantLow))
	assert.True(t, high.Equal(b.HighPass()))
}

// =============================================================================
// Statistics
// =============================================================================

func TestStats_Empty(t *testing.T) {
	var b Buffer

	_, err := b.Max()
	require.ErrorIs(t, err, ErrEmptySequence)
	_, err = b.Peak()
	require.ErrorIs(t, err, ErrEmptySequence)
	_, err = b.RMS()
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestStats_Values(t *testing.T) {
	b := New([]float64{-3, 1, 2})

	maxVal, err := b.Max()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, maxVal, 0)

	peak, err := b.Peak()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, peak, 0)

	rms, err := b.RMS()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(14.0/3.0), rms, testutil.DefaultTolerance)
}

func TestMax_AllNegative(t *testing.T) {
	maxVal, err := New([]float64{-5, -0.5, -2}).Max()
	require.NoError(t, err)
	assert.InDelta(t, -0.5, maxVal, 0)
}

func TestNormalize(t *testing.T) {
	out := New([]float64{-0.5, 0.25, 0.1}).Normalize()
	testutil.AssertSamplesInDelta(t, []float64{-1, 0.5, 0.2}, out.Samples(), testutil.DefaultTolerance)

	silent := New([]float64{0, 0, 0}).Normalize()
	assert.Equal(t, []float64{0, 0, 0}, silent.Samples())

	assert.Equal(t, 0, Buffer{}.Normalize().Len())
}
