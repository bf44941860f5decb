package morph

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleArticle = `<!DOCTYPE html>
<html lang="ja">
<head><title>散歩の記録</title></head>
<body>
<nav><a href="/">トップ</a> <a href="/about">概要</a></nav>
<article>
<h1>散歩の記録</h1>
<p>朝早く、<ruby>犬<rp>(</rp><rt>いぬ</rt><rp>)</rp></ruby>と一緒に公園まで歩いた。空は高く、風は冷たかったが、とても気持ちのよい朝だった。</p>
<p>公園では子供たちが走り回り、老人たちはベンチで新聞を読んでいた。犬は池の周りを何度も走って、鳥を追いかけようとした。</p>
<p>帰り道にパン屋に寄って、温かいパンを買った。家に着くと、犬はすぐに眠ってしまった。明日もまた同じ道を歩きたいと思う。</p>
</article>
<footer>© 2025</footer>
</body>
</html>`

func TestSanitizeRuby(t *testing.T) {
	in := []byte(`<ruby>漢字<rp>(</rp><RT class="x">かんじ</RT><rp>)</rp></ruby>`)
	got := string(SanitizeRuby(in))
	want := `<ruby>漢字</ruby>`
	if got != want {
		t.Fatalf("SanitizeRuby = %q, want %q", got, want)
	}
}

func TestExtractText(t *testing.T) {
	u, _ := url.Parse("http://localhost/walk")
	text, err := ExtractText(strings.NewReader(sampleArticle), u)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "公園") {
		t.Fatalf("expected article body in %q", text)
	}
	if strings.Contains(text, "いぬ") {
		t.Fatalf("ruby text leaked into %q", text)
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.html")
	if err := os.WriteFile(path, []byte(sampleArticle), 0o644); err != nil {
		t.Fatal(err)
	}
	text, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if !strings.Contains(text, "パン") {
		t.Fatalf("expected article body in %q", text)
	}
}
