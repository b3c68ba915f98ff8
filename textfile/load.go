package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guiguan/caster"
	"golang.org/x/net/html"
)

// Some constants for fragement size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// endOfText is broadcast after the last fragment.
type endOfText struct{}

// textFile represents a OS file which will be streamed.
type textFile struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	cast      *caster.Caster // broadcaster for async file loading
	lastError error          // remember last I/O error
}

// Stream reads a file, which must be a text or HTML file, and hands its
// content to sink, fragment by fragment and in order. Clients may indicate a
// recommended fragment length; 0 lets Stream use a sensible default. Actual
// fragments may be shorter or longer, as they are cut at whitespace.
//
// Reading is done asynchronously, but Stream returns only after sink has seen
// all fragments. Opening of the file is always done synchronously.
func Stream(name string, fragSize int64, sink func(fragment string)) error {
	tf, err := openFile(name)
	if err != nil {
		return err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	ch, ok := tf.cast.Sub(nil, 16) // subscribe before anything gets published
	if !ok {
		return fmt.Errorf("textfile: cannot subscribe to fragments of %s", name)
	}
	if isHTML(name) {
		go tf.publishHTML()
	} else {
		go tf.publishText(fragSize)
	}
	cnt := 0
	for msg := range ch {
		if _, done := msg.(endOfText); done {
			break
		}
		sink(msg.(string))
		cnt++
	}
	tracer().Debugf("textfile: streamed %d fragments of %s", cnt, name)
	return tf.lastError
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	if size < 64 {
		return max(size, 1)
	} else if size < 1024 {
		return 64
	} else if size < tenKb {
		return 256
	} else if size < hundredKb {
		return 512
	} else if size < oneMb {
		return twoKb
	}
	return sixKb
}

func isHTML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// --- File loading goroutines -----------------------------------------------

// publishText reads fragments of plain text. A fragment is cut back to its
// last whitespace; the remainder is carried over into the next fragment.
func (tf *textFile) publishText(fragSize int64) {
	defer tf.finish()
	buf := make([]byte, fragSize)
	var carry []byte
	var pos int64
	for {
		cnt, err := tf.file.ReadAt(buf, pos)
		pos += int64(cnt)
		chunk := append(carry, buf[:cnt]...)
		if err != nil {
			if err != io.EOF {
				tf.lastError = fmt.Errorf("error loading text fragment: %w", err)
			}
			if len(chunk) > 0 {
				tf.cast.Pub(string(chunk))
			}
			return
		}
		cut := bytes.LastIndexAny(chunk, " \t\r\n")
		if cut < 0 { // no whitespace yet, keep on collecting
			carry = chunk
			continue
		}
		tf.cast.Pub(string(chunk[:cut+1]))
		carry = append([]byte(nil), chunk[cut+1:]...)
	}
}

// publishHTML publishes the text content of an HTML document, skipping
// scripts and style sheets.
func (tf *textFile) publishHTML() {
	defer tf.finish()
	z := html.NewTokenizer(tf.file)
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				tf.lastError = fmt.Errorf("error tokenizing HTML: %w", err)
			}
			return
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawText(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawText(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				tf.cast.Pub(text + "\n")
			}
		}
	}
}

func isRawText(tag []byte) bool {
	t := string(tag)
	return t == "script" || t == "style"
}

// finish signals the end of the text to subscribers and shuts down the
// broadcaster.
func (tf *textFile) finish() {
	tf.cast.Pub(endOfText{})
	tf.cast.Close()
}
