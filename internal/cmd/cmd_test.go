package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"panel", "login", "logout", "whoami", "overview", "version"}

	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			for _, c := range rootCmd.Commands() {
				if c.Name() == name {
					return
				}
			}
			t.Errorf("command %q not registered", name)
		})
	}
}

func TestRootGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "api-url"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}

func TestLoginRequiresUsername(t *testing.T) {
	if loginCmd.Args == nil {
		t.Fatalf("login has no positional arg validation")
	}
	if err := loginCmd.Args(loginCmd, nil); err == nil {
		t.Errorf("login accepted zero args")
	}
	if err := loginCmd.Args(loginCmd, []string{"admin"}); err != nil {
		t.Errorf("login rejected a single username arg: %v", err)
	}
}
