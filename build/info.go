/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package build exposes the version information injected at link time.
package build

import (
	"fmt"
	"runtime"
	"time"
)

// TimeFormat is the layout of the build time passed to the linker.
const TimeFormat = "2006/01/02 15:04:05"

var (
	// Set with -ldflags "-X github.com/bbva/sternbrocot/build.tag=..." when
	// compiling release binaries.
	tag      = "unknown" // git describe --tags
	utcTime  string      // year/month/day hour:min:sec
	rev      string      // git rev-parse HEAD
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info stores the build information.
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
}

// Short returns a one line build summary.
func (i Info) Short() string {
	built := i.Time
	if built == "" {
		built = "from source"
	}
	return fmt.Sprintf("sternbrocot %s (%s, built %s, %s)",
		i.Tag, i.Platform, built, i.GoVersion)
}

// Long adds the revision to Short.
func (i Info) Long() string {
	if i.Revision == "" {
		return i.Short()
	}
	return fmt.Sprintf("%s\nrevision %s", i.Short(), i.Revision)
}

// GoTime parses the build time, the zero time when it is missing or
// malformed.
func (i Info) GoTime() time.Time {
	val, err := time.Parse(TimeFormat, i.Time)
	if err != nil {
		return time.Time{}
	}
	return val
}

// GetInfo returns the build information of the running binary.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       tag,
		Time:      utcTime,
		Revision:  rev,
		Platform:  platform,
	}
}
