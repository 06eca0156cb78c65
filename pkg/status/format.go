// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status summarizes a selection set for the operator: file counts,
// media counts and total size with binary-prefix formatting.
package status

import (
	"fmt"
)

// 🔢 binaryPrefixes are the IEC units below yobibyte
var binaryPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// 📏 FormatBytes renders a byte count with binary prefixes (base 1024,
// one decimal place), e.g. "512.0 B" or "3.4 MiB"
func FormatBytes(n int64) string {
	num := float64(n)
	for _, unit := range binaryPrefixes {
		if num < 1024.0 && num > -1024.0 {
			return fmt.Sprintf("%3.1f %sB", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f YiB", num)
}
