// SPDX-License-Identifier: EPL-2.0

// Command kiraplay decodes a sound file and plays it through the default
// audio device once, exiting when playback finishes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/kira/audio"
	"github.com/ik5/kira/engine"
	"github.com/ik5/kira/formats/aiff"
	"github.com/ik5/kira/formats/mp3"
	"github.com/ik5/kira/formats/vorbis"
	"github.com/ik5/kira/formats/wav"
	"github.com/ik5/kira/sound"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: kiraplay <file.{wav|aiff|mp3|ogg}>")
		os.Exit(1)
	}
	inPath := os.Args[1]

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	ext := filepath.Ext(inPath)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	dec, ok := reg.Get(ext)
	if !ok {
		fmt.Println("unsupported format:", ext)
		os.Exit(1)
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		panic(err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	data, err := sound.LoadStatic(src, sound.DefaultStaticSoundSettings())
	if err != nil {
		panic(err)
	}

	settings := engine.DefaultSettings()
	manager, err := engine.New(settings, engine.NewOtoBackend())
	if err != nil {
		panic(err)
	}

	handle, err := manager.Play(data)
	if err != nil {
		panic(err)
	}

	fmt.Println("Playing:", inPath)
	for handle.State() != sound.Stopped {
		time.Sleep(10 * time.Millisecond)
	}
}
