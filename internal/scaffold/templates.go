package scaffold

// templates maps template name to its file set. Paths may reference
// {{.ModuleName}}; file contents are text/template bodies over ProjectInfo.
var templates = map[string]map[string]string{
	"basic": {
		"setup.py":                      setupPyBasic,
		"README.md":                     readmeMD,
		"requirements.txt":              requirementsTxt,
		".gitignore":                    gitignore,
		"{{.ModuleName}}/__init__.py":   initPy,
		"tests/__init__.py":             "",
		"tests/test_{{.ModuleName}}.py": testBasicPy,
	},
	"cli": {
		"setup.py":                      setupPyCLI,
		"README.md":                     readmeMD,
		"requirements.txt":              requirementsTxt,
		".gitignore":                    gitignore,
		"{{.ModuleName}}/__init__.py":   initPy,
		"{{.ModuleName}}/cli.py":        cliPy,
		"tests/__init__.py":             "",
		"tests/test_{{.ModuleName}}.py": testCLIPy,
	},
}

const setupPyBasic = `from setuptools import setup, find_packages

with open("README.md", "r", encoding="utf-8") as fh:
    long_description = fh.read()

setup(
    name="{{.Name}}",
    version="{{.Version}}",
    author="{{.Author}}",
    author_email="{{.Email}}",
    description="{{.Description}}",
    long_description=long_description,
    long_description_content_type="text/markdown",
    license="{{.License}}",
    packages=find_packages(exclude=["tests", "tests.*"]),
    python_requires=">=3.8",
    install_requires=[],
)
`

const setupPyCLI = `from setuptools import setup, find_packages

with open("README.md", "r", encoding="utf-8") as fh:
    long_description = fh.read()

setup(
    name="{{.Name}}",
    version="{{.Version}}",
    author="{{.Author}}",
    author_email="{{.Email}}",
    description="{{.Description}}",
    long_description=long_description,
    long_description_content_type="text/markdown",
    license="{{.License}}",
    packages=find_packages(exclude=["tests", "tests.*"]),
    python_requires=">=3.8",
    install_requires=[],
    entry_points={
        "console_scripts": [
            "{{.Name}}={{.ModuleName}}.cli:main",
        ],
    },
)
`

const readmeMD = `# {{.Name}}

{{.Description}}

## Installation

` + "```bash" + `
pip install {{.Name}}
` + "```" + `

## License

{{.License}}
`

const requirementsTxt = `# Runtime dependencies for {{.Name}}
`

const gitignore = `__pycache__/
*.py[cod]
*.egg-info/
.eggs/
build/
dist/
.venv/
venv/
.pytest_cache/
`

const initPy = `"""{{.Description}}"""

__version__ = "{{.Version}}"
`

const cliPy = `"""Command line entry point for {{.Name}}."""

import argparse

from . import __version__


def build_parser():
    parser = argparse.ArgumentParser(prog="{{.Name}}", description="{{.Description}}")
    parser.add_argument("--version", action="version", version=__version__)
    return parser


def main(argv=None):
    parser = build_parser()
    parser.parse_args(argv)
    return 0


if __name__ == "__main__":
    raise SystemExit(main())
`

const testBasicPy = `import {{.ModuleName}}


def test_version():
    assert {{.ModuleName}}.__version__ == "{{.Version}}"
`

const testCLIPy = `from {{.ModuleName}} import cli


def test_parser_builds():
    parser = cli.build_parser()
    assert parser.prog == "{{.Name}}"


def test_main_runs():
    assert cli.main([]) == 0
`
