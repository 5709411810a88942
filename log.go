// Shared logging
//
// Copyright (c) 2023  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package mancala

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Debug is silent until EnableDebug is called
var Debug = zerolog.Nop()

// EnableDebug redirects debug output to W
func EnableDebug(w io.Writer) {
	Debug = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.StampMicro,
	}).With().Timestamp().Str("log", "debug").Logger()
}
