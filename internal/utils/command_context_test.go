package utils_test

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/codeaudit/internal/utils"
)

func TestCommandContextAccessorConfigurationFilePath(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, available := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, available)

	_, available = accessor.ConfigurationFilePath(accessor.WithConfigurationFilePath(context.Background(), "  "))
	require.False(testInstance, available)

	configurationFilePath, available := accessor.ConfigurationFilePath(accessor.WithConfigurationFilePath(context.Background(), " config.yaml "))
	require.True(testInstance, available)
	require.Equal(testInstance, "config.yaml", configurationFilePath)
}

func TestCommandContextAccessorAttachesToRoot(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()
	rootCommand := &cobra.Command{Use: "root"}
	childCommand := &cobra.Command{Use: "child"}
	rootCommand.AddCommand(childCommand)
	childCommand.SetContext(context.Background())

	accessor.AttachConfigurationFilePath(childCommand, "/etc/codeaudit/config.yaml")

	for _, command := range []*cobra.Command{rootCommand, childCommand} {
		configurationFilePath, available := accessor.ConfigurationFilePath(command.Context())
		require.True(testInstance, available)
		require.Equal(testInstance, "/etc/codeaudit/config.yaml", configurationFilePath)
	}
}
