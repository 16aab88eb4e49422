package utils

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var (
	reDigits8 = regexp.MustCompile(`^\d{8}$`)
	reTags    = regexp.MustCompile(`<[^>]*>`)
)

/*
StripJsonp remove a `callback(...)` wrapper and return the inner payload.
Returns an error when no wrapper is present.
*/
func StripJsonp(text string) (string, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if start < 0 || end <= start {
		return "", fmt.Errorf("jsonp wrapper missing: %s", Abbr(text, 60))
	}
	return text[start+1 : end], nil
}

// DecodeGBK convert GBK bytes to utf-8 text
func DecodeGBK(data []byte) (string, error) {
	reader := transform.NewReader(bytes.NewReader(data), simplifiedchinese.GBK.NewDecoder())
	out, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func EncodeGBK(text string) ([]byte, error) {
	out, _, err := transform.Bytes(simplifiedchinese.GBK.NewEncoder(), []byte(text))
	return out, err
}

// ZFill left-pad text with zeros up to width
func ZFill(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat("0", width-len(text)) + text
}

/*
CompactDate normalize a date like 2023-07-28, 2023/07/28 or 20230728 into 20230728.
*/
func CompactDate(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.ReplaceAll(text, "-", "")
	text = strings.ReplaceAll(text, "/", "")
	if idx := strings.Index(text, " "); idx > 0 {
		text = text[:idx]
	}
	if !reDigits8.MatchString(text) {
		return "", fmt.Errorf("invalid date: %q", raw)
	}
	return text, nil
}

func IsCompactDate(text string) bool {
	return reDigits8.MatchString(text)
}

// DashDate 20230728 -> 2023-07-28
func DashDate(day string) string {
	if len(day) != 8 {
		return day
	}
	return day[:4] + "-" + day[4:6] + "-" + day[6:]
}

// ShortDate 20230728 -> 230728
func ShortDate(day string) string {
	if len(day) != 8 {
		return day
	}
	return day[2:]
}

// SplitDate 20230728 -> 202307, 28
func SplitDate(day string) (string, string) {
	if len(day) != 8 {
		return day, ""
	}
	return day[:6], day[6:]
}

// RemoveTags strip html/font tags from a text line
func RemoveTags(text string) string {
	return reTags.ReplaceAllString(text, "")
}

// RegexGroup return the idx group of the first match, or "" when nothing matches
func RegexGroup(re *regexp.Regexp, text string, idx int) string {
	match := re.FindStringSubmatch(text)
	if idx >= len(match) {
		return ""
	}
	return match[idx]
}

func Abbr(text string, size int) string {
	if len(text) <= size {
		return text
	}
	return text[:size] + "..."
}
