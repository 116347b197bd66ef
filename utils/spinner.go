package utils

import (
	"fmt"
	"io"
	"time"
)

// Spinner is a process indicator written on a single terminal line.
type Spinner struct {
	w        io.Writer
	message  string
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewSpinner creates a spinner printing message on w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{w: w, message: message}
}

// Start starts the process indicator.
func (s *Spinner) Start() {
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})

	go func() {
		defer close(s.doneChan)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.w, "\r\x1b[K")
					return
				default:
					fmt.Fprintf(s.w, "\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and clears its line.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.doneChan
	s.stopChan = nil
}
