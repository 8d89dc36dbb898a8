// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package normhtml

import "testing"

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a b</p>", "<p>a b</p>"},
		{"<div>\n  <p>a b</p>\n</div>\n", "<div><p>a b</p></div>"},
		{"<ul>\n\t<li>x</li>\n\t<li>y</li>\n</ul>", "<ul><li>x</li><li>y</li></ul>"},
		{"<p><b>a</b> <i>b</i></p>", "<p><b>a</b> <i>b</i></p>"},
		{"<pre><code>  x\n</code></pre>", "<pre><code>  x\n</code></pre>"},
		{"<pre>  </pre>", "<pre>  </pre>"},
		{`<img src="a.png" alt="x">`, `<img src="a.png" alt="x">`},
		{`<img src="a.png" />`, `<img src="a.png">`},
		{`<A HREF="x">y</A>`, `<a href="x">y</a>`},
		{"<p>1 &lt; 2 &amp; 3</p>", "<p>1 &lt; 2 &amp; 3</p>"},
	}
	for _, test := range tests {
		if got := NormalizeHTML([]byte(test.b)); string(got) != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}
