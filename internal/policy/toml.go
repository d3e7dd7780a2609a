package policy

import "github.com/BurntSushi/toml"

// decodeMeta carries the bits of toml.MetaData this package actually needs:
// whether dependencies.enabled was explicitly present in the document, since
// its zero value (false) is otherwise indistinguishable from "unset".
type decodeMeta struct {
	isDependencyEnabledSet bool
}

func tomlDecodeFile(path string, cfg *Config) (decodeMeta, error) {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return decodeMeta{}, err
	}
	return decodeMeta{
		isDependencyEnabledSet: meta.IsDefined("dependencies", "enabled"),
	}, nil
}
