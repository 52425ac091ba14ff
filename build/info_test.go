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

package build

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShort(t *testing.T) {

	testCases := []struct {
		info     Info
		expected string
	}{
		{
			Info{GoVersion: "go1.22.0", Tag: "v0.1.0", Time: "2019/05/01 10:00:00", Platform: "linux amd64"},
			"sternbrocot v0.1.0 (linux amd64, built 2019/05/01 10:00:00, go1.22.0)",
		},
		{
			Info{GoVersion: "go1.22.0", Tag: "unknown", Platform: "darwin arm64"},
			"sternbrocot unknown (darwin arm64, built from source, go1.22.0)",
		},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expected, c.info.Short(), "The summary should match for test case %d", i)
	}
}

func TestLong(t *testing.T) {
	info := Info{GoVersion: "go1.22.0", Tag: "v0.1.0", Platform: "linux amd64"}
	require.Equal(t, info.Short(), info.Long())

	info.Revision = "abc123"
	require.Equal(t, info.Short()+"\nrevision abc123", info.Long())
}

func TestGoTime(t *testing.T) {
	info := Info{Time: "2019/05/01 10:00:00"}
	require.Equal(t, time.Date(2019, 5, 1, 10, 0, 0, 0, time.UTC), info.GoTime())

	info.Time = "yesterday"
	require.True(t, info.GoTime().IsZero())
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	require.Equal(t, runtime.Version(), info.GoVersion)
	require.Equal(t, "unknown", info.Tag)
	require.Equal(t, runtime.GOOS+" "+runtime.GOARCH, info.Platform)
}
