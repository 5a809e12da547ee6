// Package templates holds the literal file payloads written by scaffold
// runs. Static payloads are raw string constants with {{token}} placeholders
// left for the engine to render; structured payloads (environment.yml,
// pyproject.toml, the run marker) are generated from Go values so the output
// is always well-formed.
package templates

// Readme is the top-level narrative document for every tier.
const Readme = `# {{name}}

Starter data science project scaffolded on {{created_at}}.

## Layout

- ` + "`data/raw/`" + `: immutable input data, never edited by hand
- ` + "`data/processed/`" + `: derived datasets, reproducible from raw
- ` + "`notebooks/`" + `: exploratory notebooks
- ` + "`src/{{name_snake}}/`" + `: importable project code
- ` + "`tests/`" + `: pytest suite

## Getting started

` + "```sh" + `
conda env create -f environment.yml
conda activate {{name}}
pytest
` + "```" + `
`

// Gitignore covers the usual Python and data-project noise.
const Gitignore = `# Byte-compiled / cache
__pycache__/
*.py[cod]
.ipynb_checkpoints/
.pytest_cache/
.ruff_cache/

# Environments
.env
.venv/
env/
venv/

# Data (only .gitkeep markers are tracked)
data/raw/*
data/processed/*
!data/raw/.gitkeep
!data/processed/.gitkeep

# Tooling
*.egg-info/
build/
dist/
.coverage
htmlcov/

# Editors
.idea/
*.swp
`

// PackageInit seeds the importable package.
const PackageInit = `"""{{name}}: scaffolded data science project."""

__version__ = "0.1.0"
`

// TestsInit keeps the tests directory importable.
const TestsInit = ``

// MainPy is the runnable entry point added at the core tier.
const MainPy = `"""Entry point for {{name}}."""


def main() -> None:
    """Run the project pipeline."""
    print("{{name}} scaffold is working")


if __name__ == "__main__":
    main()
`

// TestMainPy exercises the entry point so the suite is green from day one.
const TestMainPy = `"""Smoke tests for {{name_snake}}.main."""

from {{name_snake}}.main import main


def test_main_runs(capsys):
    main()
    captured = capsys.readouterr()
    assert "{{name}}" in captured.out
`

// LicenseMIT is the licensing file added at the core tier.
const LicenseMIT = `MIT License

Copyright (c) {{year}} {{author}}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

// CIWorkflow is the GitHub Actions pipeline added at the full tier.
const CIWorkflow = `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-python@v5
        with:
          python-version: "{{python_version}}"
      - name: Install project
        run: |
          python -m pip install --upgrade pip
          pip install -e .
          pip install pytest
      - name: Run tests
        run: pytest
`

// VSCodeSettings configures the editor for the scaffolded interpreter.
const VSCodeSettings = `{
  "python.defaultInterpreterPath": "python",
  "python.testing.pytestEnabled": true,
  "python.testing.pytestArgs": ["tests"],
  "editor.formatOnSave": true,
  "editor.rulers": [100],
  "files.trimTrailingWhitespace": true
}
`

// VSCodeExtensions recommends the minimum useful extension set.
const VSCodeExtensions = `{
  "recommendations": [
    "ms-python.python",
    "ms-toolsai.jupyter",
    "charliermarsh.ruff"
  ]
}
`

// PreCommitConfig wires the standard lint/format hooks at the full tier.
const PreCommitConfig = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.6.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
      - id: check-yaml
      - id: check-added-large-files
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.6.3
    hooks:
      - id: ruff
        args: [--fix]
      - id: ruff-format
`
