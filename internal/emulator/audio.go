package emulator

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 44100
	toneHz     = 240

	// one tenth of a second covers a whole number of tone periods, so the
	// buffer can be queued repeatedly without a phase jump
	waveLength = sampleRate / 10
)

// audio plays a square wave tone while the sound timer is running. Samples
// are queued to a paused SDL audio device, the beep signal toggles playback.
type audio struct {
	device  sdl.AudioDeviceID
	wave    []byte
	playing bool
}

func newAudio() (*audio, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return &audio{
		device: device,
		wave:   squareWave(),
	}, nil
}

// setBeeping starts or stops the tone. It is called once per cycle and
// keeps the device queue topped up while the tone is playing.
func (a *audio) setBeeping(on bool) {
	if !on {
		if a.playing {
			sdl.PauseAudioDevice(a.device, true)
			sdl.ClearQueuedAudio(a.device)
			a.playing = false
		}
		return
	}

	if sdl.GetQueuedAudioSize(a.device) < uint32(len(a.wave)) {
		_ = sdl.QueueAudio(a.device, a.wave)
	}
	if !a.playing {
		sdl.PauseAudioDevice(a.device, false)
		a.playing = true
	}
}

func (a *audio) close() {
	sdl.CloseAudioDevice(a.device)
}

// squareWave generates one loopable buffer of the beep tone, centered
// around the unsigned 8-bit silence value.
func squareWave() []byte {
	wave := make([]byte, waveLength)
	period := sampleRate / toneHz

	for i := range wave {
		if i%period < period/2 {
			wave[i] = 192
		} else {
			wave[i] = 64
		}
	}
	return wave
}
