package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ChromeRenderer converte HTML em PDF via Chromium headless. O browser é
// compartilhado; cada documento renderiza em uma página própria, o que torna
// o lote paralelizável com segurança.
type ChromeRenderer struct {
	browser *rod.Browser
	workers int
	log     *zap.Logger
}

// NewChromeRenderer lança o Chromium headless e conecta o cliente DevTools.
// chromeBin vazio usa o binário resolvido pelo launcher; workers <= 0 usa o
// paralelismo de CPU disponível.
func NewChromeRenderer(chromeBin string, workers int, log *zap.Logger) (*ChromeRenderer, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}

	l := launcher.New().Headless(true)
	if chromeBin != "" {
		l = l.Bin(chromeBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar o Chromium: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no Chromium: %w", err)
	}

	return &ChromeRenderer{browser: browser, workers: workers, log: log}, nil
}

func (r *ChromeRenderer) Close() error {
	if r.browser == nil {
		return nil
	}
	return r.browser.Close()
}

func (r *ChromeRenderer) RenderOne(ctx context.Context, markup, outputPath string, orientation Orientation) ([]byte, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir página de renderização: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(wrapPage(markup, orientation)); err != nil {
		return nil, fmt.Errorf("falha ao carregar markup: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("falha ao aguardar carregamento: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		Landscape:         orientation == Landscape,
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao converter para PDF: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler PDF gerado: %w", err)
	}

	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
			return nil, fmt.Errorf("falha ao gravar PDF em %s: %w", outputPath, err)
		}
	}
	return pdf, nil
}

// RenderBatch valida o contrato antes de qualquer renderização e então
// despacha os itens para um pool limitado. Os resultados são casados pela
// posição de entrada, não pela ordem de conclusão, preservando a
// contabilidade de sucesso/falha do chamador.
func (r *ChromeRenderer) RenderBatch(ctx context.Context, markups, outputPaths []string, orientation Orientation) ([]string, error) {
	if len(markups) != len(outputPaths) {
		return nil, ErrBatchMismatch
	}

	results := make([]string, len(markups))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range markups {
		g.Go(func() error {
			if _, err := r.RenderOne(ctx, markups[i], outputPaths[i], orientation); err != nil {
				// Falha isolada: registra e segue com os demais itens
				r.log.Error("falha ao renderizar documento",
					zap.String("path", outputPaths[i]), zap.Error(err))
				return nil
			}
			results[i] = outputPaths[i]
			return nil
		})
	}
	_ = g.Wait()

	produced := make([]string, 0, len(results))
	for _, path := range results {
		if path != "" {
			produced = append(produced, path)
		}
	}
	return produced, nil
}
