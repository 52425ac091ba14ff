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

package fraction

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads "n/d", "n" or a non-negative decimal literal such as "0.375"
// or "3.14159" and returns the value in lowest terms. "1/0" is accepted as
// the infinity boundary.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, errors.Wrap(ErrMalformed, "empty input")
	}

	if idx := strings.IndexByte(s, '/'); idx != -1 {
		num, err := strconv.ParseUint(strings.TrimSpace(s[:idx]), 10, 64)
		if err != nil {
			return Fraction{}, errors.Wrapf(ErrMalformed, "numerator of %q", s)
		}
		den, err := strconv.ParseUint(strings.TrimSpace(s[idx+1:]), 10, 64)
		if err != nil {
			return Fraction{}, errors.Wrapf(ErrMalformed, "denominator of %q", s)
		}
		f := Fraction{num, den}
		if err := f.Validate(); err != nil {
			return Fraction{}, err
		}
		return f.Reduced(), nil
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() < 0 {
		return Fraction{}, errors.Wrapf(ErrMalformed, "%q is not a non-negative number", s)
	}
	if !r.Num().IsUint64() || !r.Denom().IsUint64() {
		return Fraction{}, errors.Wrapf(ErrMalformed, "%q does not fit in 64 bits", s)
	}
	return Fraction{r.Num().Uint64(), r.Denom().Uint64()}, nil
}

// Rat returns f as a big.Rat. The 1/0 boundary has no big.Rat value.
func (f Fraction) Rat() (*big.Rat, error) {
	if f.Den == 0 {
		return nil, errors.Wrapf(ErrZeroDenominator, "no rational value for %s", f)
	}
	return new(big.Rat).SetFrac(new(big.Int).SetUint64(f.Num), new(big.Int).SetUint64(f.Den)), nil
}
