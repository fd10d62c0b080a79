package alarm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const (
	toneSampleRate = 44100
	toneFreqHz     = 880.0
	toneSeconds    = 1.0
	toneDecay      = 4.0
)

// toneWAV synthesizes the alarm tone: a fixed-pitch sine wave with an
// exponential decay over roughly one second, as 16-bit mono PCM.
func toneWAV() []byte {
	numSamples := int(toneSampleRate * toneSeconds)
	dataSize := numSamples * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))                // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))               // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	for i := 0; i < numSamples; i++ {
		t := float64(i) / toneSampleRate
		envelope := math.Exp(-toneDecay * t)
		sample := math.Sin(2*math.Pi*toneFreqHz*t) * envelope
		binary.Write(&buf, binary.LittleEndian, int16(sample*math.MaxInt16*0.6))
	}

	return buf.Bytes()
}

// tonePath writes the synthesized tone to a cached temp file and returns its
// location.
func tonePath() (string, error) {
	path := filepath.Join(os.TempDir(), "nudge-tone.wav")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, toneWAV(), 0600); err != nil {
		return "", fmt.Errorf("failed to write tone file: %w", err)
	}
	return path, nil
}

// tonePlayer picks the platform audio player, if any.
func tonePlayer() (name string, args []string, err error) {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"afplay"}
	case "linux":
		candidates = []string{"paplay", "aplay", "ffplay"}
	case "windows":
		return "powershell", []string{"-NoProfile", "-Command"}, nil
	default:
		return "", nil, fmt.Errorf("no audio player for %s", runtime.GOOS)
	}

	for _, c := range candidates {
		if _, lookErr := exec.LookPath(c); lookErr == nil {
			if c == "ffplay" {
				return c, []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}, nil
			}
			return c, nil, nil
		}
	}
	return "", nil, fmt.Errorf("no audio player found")
}

// playTone plays the alarm tone through the platform audio player.
func playTone() error {
	path, err := tonePath()
	if err != nil {
		return err
	}

	player, args, err := tonePlayer()
	if err != nil {
		return err
	}

	if player == "powershell" {
		script := fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path)
		args = append(args, script)
	} else {
		args = append(args, path)
	}

	if err := exec.Command(player, args...).Run(); err != nil {
		return fmt.Errorf("%s failed: %w", player, err)
	}
	return nil
}
