// Package audio plays the optional sound cue when an alert is
// presented. It uses the beep library to decode WAV, OGG, and MP3
// files with volume control.
package audio
