package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightstream/strategy-ai/pkg/config"
	"github.com/insightstream/strategy-ai/pkg/llm"
)

var proxyAddr string

// upstreamURLs maps each provider to its chat completions endpoint.
var upstreamURLs = map[llm.Provider]string{
	llm.ProviderPerplexity: "https://api.perplexity.ai/chat/completions",
	llm.ProviderOpenRouter: "https://openrouter.ai/api/v1/chat/completions",
}

func NewProxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Run a relay that injects the provider credential server-side",
		Long: `Serve POST /v1/chat/completions and forward each request to the
configured provider with the server-side API key attached, so clients
never see the credential. Upstream status codes and error bodies pass
through unchanged.

Examples:
  # Relay to the configured provider on the default port
  strategy-ai proxy

  # Custom listen address
  strategy-ai proxy --addr :9090`,
		RunE: runProxy,
	}

	cmd.Flags().StringVar(&proxyAddr, "addr", ":8080", "Listen address")

	return cmd
}

func runProxy(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return llm.ErrMissingAPIKey
	}
	upstream, ok := upstreamURLs[cfg.Provider]
	if !ok {
		return fmt.Errorf("unsupported provider %q", cfg.Provider)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", relayHandler(upstream, cfg.APIKey, logger))

	server := &http.Server{
		Addr:              proxyAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-cmd.Context().Done()
		server.Close()
	}()

	printHeader("🔀 Provider Relay")
	fmt.Printf("📡 Forwarding to %s\n", upstream)
	fmt.Printf("🔌 Listening on %s\n\n", proxyAddr)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func relayHandler(upstream, apiKey string, logger *zap.Logger) http.HandlerFunc {
	client := &http.Client{Timeout: 120 * time.Second}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, upstream, r.Body)
		if err != nil {
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}
		req.Header.Set("Authorization", "Bearer "+apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			logger.Warn("upstream request failed", zap.Error(err))
			http.Error(w, `{"error":"upstream request failed"}`, http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(w, resp.Body); err != nil {
			logger.Warn("failed to relay response", zap.Error(err))
		}
	}
}
