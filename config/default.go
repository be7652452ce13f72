package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/color"
	"github.com/tubex-cli/tubex/constant"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for "tubex config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the TUBEX_* variable bound to the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Tubex + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds every known configuration field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to TUBEX_* environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ExtractPreferredQualities, []string{"mp4_1080", "mp4_720", "medium", "webm_720", "webm_360"}, "Preferred concrete qualities, best first.\nMeta qualities (high, any...) are ignored here")
	register(key.ExtractSupportedMedia, []string{"video/mp4", "video/webm", "video/3gpp"}, "MIME types a stream must have to be kept.\nAn empty list keeps the defaults")
	register(key.ExtractLanguage, "", "Language code sent to the provider.\nDerived from LC_ALL or LANG when empty")
	register(key.ExtractElFields, []string{"embedded", "detailpage", "vevo", ""}, "Values of the el request parameter.\nOnly the first one is sent")
	register(key.ExtractDefaultQuality, "any", "Quality printed when --quality is not given.\nType \"tubex info --qualities\" to list them")
	register(key.ProviderHost, constant.ProviderHost, "Host of the provider's watch pages")
	register(key.ProviderShortHost, constant.ProviderShortHost, "Host of the provider's short links")
	register(key.ProviderEndpoint, constant.InfoEndpoint, "Video info endpoint")
	register(key.NetworkTimeout, "1m", "HTTP request timeout, e.g. 30s or 2m")
	register(key.NetworkUserAgent, constant.UserAgent, "User agent sent with every request")
	register(key.NetworkTLSFingerprint, false, "Dial with a browser TLS fingerprint")
	register(key.ThumbnailQuality, "any", "Thumbnail quality to download.\nAvailable options are: small, medium, high, default, standard, any")
	register(key.ThumbnailOverwritePrompt, true, "Ask before overwriting an existing thumbnail")
	register(key.HistorySaveOnExtract, true, "Remember resolved videos")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\nerror, warn, info, debug")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
	register(key.Player, "mpv", "Media player used by \"tubex play\"")
	register(key.ServerAddress, "127.0.0.1:8390", "Listen address of \"tubex serve\"")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
