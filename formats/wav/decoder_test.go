// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/bmsmix/internal/audiotest"
)

func readAll(t *testing.T, r interface {
	ReadSamples([]float32) (int, error)
}) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 64)
	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_MonoWAV(t *testing.T) {
	t.Parallel()

	data := new(bytes.Buffer)
	if err := WriteWAV16(data, 8000, 1, []int16{0, 16384, -16384, 32767}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("format = %d Hz/%d ch, want 8000 Hz/1 ch", src.SampleRate(), src.Channels())
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	got := readAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_StereoFromPlainReader(t *testing.T) {
	t.Parallel()

	data := new(bytes.Buffer)
	if err := WriteWAV16(data, 44100, 2, []int16{100, 200, 300, 400, 500, 600}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	// io.MultiReader hides the Seek method, forcing the buffering path.
	src, err := Decoder{}.Decode(io.MultiReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if got := readAll(t, src); len(got) != 6 {
		t.Errorf("decoded %d samples, want 6", len(got))
	}
}

func TestDecoder_SkipsExtraChunks(t *testing.T) {
	t.Parallel()

	// RIFF with a JUNK chunk between fmt and data, common in sample packs.
	pcm := []int16{1000, -1000}
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16))
	binary.Write(body, binary.LittleEndian, uint16(1))
	binary.Write(body, binary.LittleEndian, uint16(1))
	binary.Write(body, binary.LittleEndian, uint32(8000))
	binary.Write(body, binary.LittleEndian, uint32(16000))
	binary.Write(body, binary.LittleEndian, uint16(2))
	binary.Write(body, binary.LittleEndian, uint16(16))
	body.WriteString("JUNK")
	binary.Write(body, binary.LittleEndian, uint32(4))
	body.Write([]byte{0, 0, 0, 0})
	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(len(pcm)*2))
	binary.Write(body, binary.LittleEndian, pcm)

	file := new(bytes.Buffer)
	file.WriteString("RIFF")
	binary.Write(file, binary.LittleEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	src, err := Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	if len(got) != 2 || math.Abs(float64(got[0]-1000.0/32768.0)) > 1e-6 {
		t.Errorf("decoded %v, want two samples starting at %v", got, 1000.0/32768.0)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a riff file, just text")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	src := audiotest.NewConstantSource(22050, 1, 1000, 0.5)
	frames, err := Encode(f, src, 16)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if frames != 1000 {
		t.Errorf("Encode() frames = %d, want 1000", frames)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	decoded, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", decoded.SampleRate())
	}

	got := readAll(t, decoded)
	if len(got) != 1000 {
		t.Fatalf("decoded %d samples, want 1000", len(got))
	}
	for i, s := range got {
		if math.Abs(float64(s-0.5)) > 0.001 {
			t.Fatalf("sample[%d] = %v, want ≈0.5", i, s)
		}
	}
}

func TestEncode_RejectsBitDepth(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	_, err = Encode(f, audiotest.NewSilentSource(8000, 1, 10), 12)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}
