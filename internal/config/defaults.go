package config

import (
	"slices"

	"github.com/rakuda/seriesgen/internal/util/naming"
)

// DefaultConfigFilename is the configuration file looked up by the CLI.
const DefaultConfigFilename = "seriesgen.yaml"

// Default anchors of the aggregator file.
const (
	DefaultEntryAnchor      = "export function registerEbayRoutes"
	DefaultClosingDelimiter = "}"
)

// DefaultColors is the phase colour rotation.
var DefaultColors = []string{
	"indigo-600", "orange-600", "pink-600", "slate-600", "red-600",
	"fuchsia-600", "green-600", "blue-600", "yellow-600", "purple-600",
	"cyan-600", "lime-600", "emerald-600", "sky-600", "amber-600",
	"violet-600", "rose-600", "teal-600",
}

func dashboardTab() Tab { return Tab{Key: "dashboard", Label: "ダッシュボード", Path: "dashboard/summary"} }
func analyticsTab() Tab { return Tab{Key: "analytics", Label: "分析", Path: "analytics/overview"} }
func settingsTab() Tab  { return Tab{Key: "settings", Label: "設定", Path: "settings"} }

func categoryTabs(resources, variants, listings Tab) []Tab {
	return []Tab{dashboardTab(), resources, variants, listings, analyticsTab(), settingsTab()}
}

// DefaultCategories returns the category word list in generation order.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "listing", Noun: "engine", Label: "出品",
			Tabs: categoryTabs(
				Tab{Key: "listings", Label: "出品", Path: "resources"},
				Tab{Key: "templates", Label: "テンプレート", Path: "variants"},
				Tab{Key: "optimization", Label: "最適化", Path: "listings"},
			),
		},
		{
			Name: "order", Noun: "routing", Label: "注文",
			Tabs: categoryTabs(
				Tab{Key: "orders", Label: "注文", Path: "resources"},
				Tab{Key: "processing", Label: "処理", Path: "variants"},
				Tab{Key: "tracking", Label: "追跡", Path: "listings"},
			),
		},
		{
			Name: "inventory", Noun: "planning", Label: "在庫",
			Tabs: categoryTabs(
				Tab{Key: "inventory", Label: "在庫", Path: "resources"},
				Tab{Key: "operations", Label: "オペレーション", Path: "variants"},
				Tab{Key: "forecasting", Label: "予測", Path: "listings"},
			),
		},
		{
			Name: "seller", Noun: "dashboard", Label: "セラー",
			Tabs: categoryTabs(
				Tab{Key: "sellers", Label: "セラー", Path: "resources"},
				Tab{Key: "performance", Label: "パフォーマンス", Path: "variants"},
				Tab{Key: "management", Label: "管理", Path: "listings"},
			),
		},
		{
			Name: "product", Noun: "analysis", Label: "商品",
			Tabs: categoryTabs(
				Tab{Key: "products", Label: "商品", Path: "resources"},
				Tab{Key: "operations", Label: "オペレーション", Path: "variants"},
				Tab{Key: "quality", Label: "クオリティ", Path: "listings"},
			),
		},
	}
}

// DefaultSeries returns the built-in series vocabularies.
func DefaultSeries() []Series {
	return []Series{
		{Name: "blaze", Adjectives: []string{
			"autonomous", "cognitive", "generative", "semantic", "contextual",
			"adaptive-ai", "neural", "deep", "reinforced", "evolutionary",
			"probabilistic", "heuristic", "algorithmic", "computational",
		}},
		{Name: "storm", Adjectives: []string{
			"resilient", "fault-tolerant", "redundant", "recoverable", "durable",
			"persistent", "consistent", "available", "partitioned", "replicated",
			"sharded", "clustered", "federated", "synchronized",
		}},
		{Name: "wave", Adjectives: []string{
			"event-driven", "stream", "pipeline", "workflow", "orchestrated",
			"choreographed", "message", "queue", "pub-sub", "broadcast",
			"multicast", "unicast", "bidirectional", "asynchronous",
		}},
		{Name: "prism", Adjectives: []string{
			"observable", "traceable", "auditable", "loggable", "monitorable",
			"measurable", "quantifiable", "benchmarkable", "profileable", "debuggable",
			"inspectable", "diagnosable", "analyzable", "reportable",
		}},
		{Name: "nexus", Adjectives: []string{
			"composable-v2", "modular-v2", "pluggable-v2", "extensible-v2", "configurable-v2",
			"customizable", "themeable", "localizable", "accessible", "responsive-v2",
			"progressive", "isomorphic", "universal", "hybrid-v2",
		}},
		{Name: "forge", Adjectives: []string{
			"secure", "encrypted", "authenticated", "authorized", "validated",
			"sanitized", "hardened", "isolated", "sandboxed", "containerized",
			"immutable", "versioned", "cacheable", "optimizable",
		}},
		{Name: "drift", Adjectives: []string{
			"temporal", "scheduled", "periodic", "recurring", "triggered",
			"delayed", "throttled", "debounced", "batched", "queued",
			"prioritized", "weighted", "balanced", "distributed-v2",
		}},
		{Name: "arc", Adjectives: []string{
			"graph-based", "tree-based", "node-based", "edge-based", "mesh-based",
			"hierarchical", "flat", "nested", "recursive", "iterative",
			"parallel", "sequential", "concurrent", "transactional",
		}},
		{Name: "vortex", Adjectives: []string{
			"data-driven", "model-driven", "domain-driven", "event-sourced", "cqrs-based",
			"saga-based", "state-machine", "finite-state", "reactive-v2", "functional",
			"declarative", "imperative", "procedural", "object-oriented",
		}},
		{Name: "echo", Adjectives: []string{
			"cloud-native", "serverless", "microservice", "monolithic", "modular-v3",
			"layered", "hexagonal", "clean-arch", "onion-arch", "vertical-slice",
			"feature-based", "domain-based", "service-based", "component-based",
		}},
	}
}

// Default returns a complete Spec built from the built-in data set.
func Default() *Spec {
	return &Spec{
		Prefix:       "ebay",
		RouteRoot:    naming.DefaultRouteRoot,
		SymbolSuffix: naming.DefaultSymbolSuffix,
		Paths: Paths{
			RoutesDir:  "apps/api/src/routes",
			PagesDir:   "apps/web/src/app/ebay",
			OutputDir:  "codex/output",
			RoutesFile: "apps/api/src/routes/ebay-routes.ts",
		},
		Splice: SpliceSpec{
			EntryAnchor:      DefaultEntryAnchor,
			ClosingDelimiter: DefaultClosingDelimiter,
			Mode:             SpliceAnchored,
		},
		Colors:     slices.Clone(DefaultColors),
		Categories: DefaultCategories(),
		Series:     DefaultSeries(),
	}
}
