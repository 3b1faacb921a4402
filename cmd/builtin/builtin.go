package builtin

import "github.com/mwantia/cmdargs/cmd"

// InitBuiltin registers every builtin command on m.
func InitBuiltin(m *cmd.Manager) error {
	commands := []cmd.Command{
		NewHelpCommand(m),
		&EchoCommand{},
		&SpawnCommand{},
	}

	for _, c := range commands {
		if err := m.Register(c); err != nil {
			return err
		}
	}
	return nil
}
