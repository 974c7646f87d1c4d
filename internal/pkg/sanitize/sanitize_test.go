package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, "hello", Text("  hello  "))
	require.Equal(t, "hello", Text("<script>alert(1)</script>hello"))
	require.Equal(t, "bold", Text("<b>bold</b>"))
	require.Equal(t, "", Text("<img src=x onerror=alert(1)>"))
}

func TestTags(t *testing.T) {
	got := Tags([]string{" rug pull ", "<i>phishing</i>", "<script></script>", ""})
	require.Equal(t, []string{"rug pull", "phishing"}, got)

	require.Empty(t, Tags(nil))
}
