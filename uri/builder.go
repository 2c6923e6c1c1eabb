/*
Copyright 2025 Trident Authors

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

package uri

import (
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Build renders c with the default parser.
func Build(c *Components) (string, error) {
	return errtrace.Wrap2(defaultParser.Build(c))
}

// BuildTo writes c to w with the default parser.
func BuildTo(w io.Writer, c *Components) (int, error) {
	return errtrace.Wrap2(defaultParser.BuildTo(w, c))
}

// Build renders c as a URI string. See BuildTo for the layout.
func (p *Parser) Build(c *Components) (string, error) {
	var b strings.Builder
	if _, err := p.BuildTo(&b, c); err != nil {
		return "", errtrace.Wrap(err)
	}
	return b.String(), nil
}

// BuildTo writes c to w in wire order:
//
//	scheme ":" ["//" authority] path ["?" encoded-query] ["#" fragment]
//
// The authority is written when it is non-nil, the query when it is non-nil
// and the fragment when it is non-nil. It returns the number of bytes written.
func (p *Parser) BuildTo(w io.Writer, c *Components) (int, error) {
	if c == nil {
		return 0, errtrace.Wrap(&BuildError{Err: ErrNilComponents})
	}

	cw := &componentWriter{w: w}
	cw.write("scheme", c.Scheme, schemeDelim)
	if c.Authority != nil {
		cw.write("authority", authorityStart)
		cw.writeAuthority(c.Authority)
	}
	cw.write("path", c.Path)
	if c.Query != nil {
		cw.write("query", queryDelim, p.codec.Encode(c.Query))
	}
	if c.Fragment != nil {
		cw.write("fragment", fragmentDelim, *c.Fragment)
	}
	if cw.err != nil {
		return cw.n, errtrace.Wrap(cw.err)
	}
	return cw.n, nil
}

// writeAuthority writes a without the leading "//".
func writeAuthority(w io.Writer, a *Authority) (int, error) {
	cw := &componentWriter{w: w}
	cw.writeAuthority(a)
	if cw.err != nil {
		return cw.n, errtrace.Wrap(cw.err)
	}
	return cw.n, nil
}

// componentWriter writes URI parts to an io.Writer, counting bytes and
// keeping the first error. Writes after an error are dropped.
type componentWriter struct {
	w   io.Writer
	n   int
	err error
}

// write appends parts, which all belong to component.
func (cw *componentWriter) write(component string, parts ...string) {
	for _, s := range parts {
		if cw.err != nil {
			return
		}
		n, err := io.WriteString(cw.w, s)
		cw.n += n
		if err != nil {
			cw.err = &BuildError{Component: component, Err: err}
		}
	}
}

// writeAuthority renders "[username[:password]@]host[:port]". Userinfo is
// written whenever it is non-nil, so an empty username still yields "@".
func (cw *componentWriter) writeAuthority(a *Authority) {
	if ui := a.UserInfo; ui != nil {
		cw.write("userinfo", ui.Username)
		if ui.Password != nil {
			cw.write("userinfo", passwordDelim, *ui.Password)
		}
		cw.write("userinfo", userinfoDelim)
	}
	cw.write("host", a.Host)
	if a.Port != nil {
		cw.write("port", portDelim, strconv.FormatUint(*a.Port, 10))
	}
}
