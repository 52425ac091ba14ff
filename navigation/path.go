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

package navigation

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
)

// ErrMalformedPath is returned by ParsePath.
var ErrMalformedPath = errors.New("malformed path")

// Path is the sequence of turns from the root to a node. The root is the
// empty path.
type Path []Side

// PathOf returns the turns leading from the root to target. Its length is
// the sum of the continued fraction coefficients of target minus one.
func PathOf(target fraction.Fraction) (Path, error) {
	if err := target.ValidateTarget(); err != nil {
		return nil, err
	}
	var path Path
	bounds := RootBounds()
	for {
		side, ok := bounds.Toward(target)
		if !ok {
			return path, nil
		}
		path = append(path, side)
		bounds = bounds.Child(side)
	}
}

// Bounds folds the path from the root bounds.
func (p Path) Bounds() Bounds {
	bounds := RootBounds()
	for _, side := range p {
		bounds = bounds.Child(side)
	}
	return bounds
}

// Fraction returns the fraction at the end of the path.
func (p Path) Fraction() fraction.Fraction {
	return p.Bounds().Node()
}

// Depth is the number of turns, the root having depth 0.
func (p Path) Depth() int {
	return len(p)
}

// String renders the path as a string of L and R; the root is "I".
func (p Path) String() string {
	if len(p) == 0 {
		return "I"
	}
	var sb strings.Builder
	sb.Grow(len(p))
	for _, side := range p {
		sb.WriteString(side.String())
	}
	return sb.String()
}

// ParsePath is the inverse of Path.String. Letters are case insensitive.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "I" || s == "i" {
		return Path{}, nil
	}
	path := make(Path, 0, len(s))
	for _, r := range s {
		switch r {
		case 'L', 'l':
			path = append(path, Left)
		case 'R', 'r':
			path = append(path, Right)
		default:
			return nil, errors.Wrapf(ErrMalformedPath, "unexpected %q in %q", r, s)
		}
	}
	return path, nil
}
