// Package utils holds the ambient helpers of the repoversion CLI: a zap
// LoggerFactory, a Viper backed ConfigurationLoader and lipgloss output styles.
package utils
